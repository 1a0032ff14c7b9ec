package models

import "time"

const (
	CashEntryIn  = "entrada"
	CashEntryOut = "saida"
)

type CashEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Description   string  `gorm:"size:255;not null" json:"description"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Type          string  `gorm:"size:10;default:'entrada'" json:"type"`
	PaymentMethod string  `gorm:"size:30" json:"payment_method"`
	EntryDate     string  `gorm:"size:10;not null" json:"entry_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
