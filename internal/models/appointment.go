package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet,omitempty"`

	ServiceTypeID uint        `json:"service_type_id"`
	ServiceType   ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_type,omitempty"`

	// Cópia desnormalizada: o histórico não muda se o catálogo mudar.
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Price       float64 `json:"price"`

	// Um único slot por (data, hora) em toda a loja, qualquer que
	// seja o status. Cancelamento não libera o horário; só a
	// exclusão do registro.
	AppointmentDate string `gorm:"size:10;not null;uniqueIndex:idx_appointment_slot" json:"appointment_date"`
	AppointmentTime string `gorm:"size:8;not null;uniqueIndex:idx_appointment_slot" json:"appointment_time"`

	Status string `gorm:"size:20;default:'agendado'" json:"status"`

	Transport      bool    `gorm:"default:false" json:"transport"`
	TransportPrice float64 `json:"transport_price"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
