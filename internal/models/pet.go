package models

import "time"

type Pet struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Species      string  `gorm:"size:50" json:"species"`
	Breed        string  `gorm:"size:100" json:"breed"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Observations string  `gorm:"size:500" json:"observations"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
