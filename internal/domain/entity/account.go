package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// Account is one node of the chart of accounts.
type Account struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ParentID     *uuid.UUID       `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Code         string           `gorm:"size:100" json:"code"`
	Description  string           `gorm:"type:text" json:"description"`
	Type         enum.AccountType `gorm:"not null" json:"type"`
	CurrencyCode string           `gorm:"size:3;not null" json:"currency_code"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Children []Account `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Splits   []Split   `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
