package models

import "time"

// Tutor do pet. As colunas *_norm guardam a forma canônica usada
// na comparação de duplicados (índice único = fonte da verdade).
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	NameNorm string `gorm:"size:100;uniqueIndex" json:"-"`

	CPF     string `gorm:"size:14" json:"cpf"`
	CPFNorm string `gorm:"size:11;uniqueIndex" json:"-"`

	Phone     string `gorm:"size:20" json:"phone"`
	PhoneNorm string `gorm:"size:15;uniqueIndex" json:"-"`

	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:2" json:"state"`
	CEP     string `gorm:"size:9" json:"cep"`

	Pets []Pet `gorm:"constraint:OnDelete:CASCADE;" json:"pets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
