package models

import "time"

// Registro imutável gravado quando um agendamento é concluído.
type ServiceHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint `json:"client_id"`
	PetID    uint `json:"pet_id"`

	ServiceName string    `gorm:"size:100" json:"service_name"`
	Price       float64   `json:"price"`
	PerformedAt time.Time `json:"performed_at"`
	Notes       string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
