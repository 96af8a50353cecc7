package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a party the book issues expense vouchers against.
type Employee struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Number       string         `gorm:"size:100;not null" json:"number"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	CurrencyCode string         `gorm:"size:3;not null;default:'USD'" json:"currency_code"`
	Active       bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
