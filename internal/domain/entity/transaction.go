package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// Transaction is one ledger transaction. Its splits must balance to zero in
// the transaction's currency.
type Transaction struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Num          string         `gorm:"size:100" json:"num"`
	Description  string         `gorm:"type:text" json:"description"`
	CurrencyCode string         `gorm:"size:3;not null" json:"currency_code"`
	DatePosted   time.Time      `gorm:"type:date;not null;index" json:"date_posted"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Splits []Split `gorm:"foreignKey:TransactionID" json:"splits,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Split is one signed value movement within a transaction, associated with
// exactly one account. A split settling an invoice carries the invoice's lot
// and a Payment action.
type Split struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID        `gorm:"type:uuid;not null;index" json:"transaction_id"`
	AccountID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	Memo          string           `gorm:"type:text" json:"memo"`
	Action        enum.SplitAction `gorm:"not null;default:0" json:"action"`
	Value         decimal.Decimal  `gorm:"type:decimal(18,4);not null" json:"value"`
	LotID         *uuid.UUID       `gorm:"type:uuid;index" json:"lot_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
	Account     Account     `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new split
func (s *Split) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Split model
func (Split) TableName() string {
	return "splits"
}
