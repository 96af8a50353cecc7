package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// TaxTable is a named set of tax rows applied to invoice entries that
// reference it. Tax tables are static reference data within a loaded book.
type TaxTable struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Invisible bool           `gorm:"not null;default:false" json:"invisible"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Entries []TaxTableEntry `gorm:"foreignKey:TaxTableID" json:"entries,omitempty"`
}

// BeforeCreate generates a UUID before creating a new tax table
func (t *TaxTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxTable model
func (TaxTable) TableName() string {
	return "tax_tables"
}

// TaxTableEntry is one row of a tax table: the account the collected tax is
// booked to and either a percentage (Amount=16 means 16%) or a flat value.
type TaxTableEntry struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TaxTableID uuid.UUID       `gorm:"type:uuid;not null;index" json:"tax_table_id"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null" json:"account_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	Basis      enum.TaxBasis   `gorm:"not null;default:0" json:"basis"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	TaxTable TaxTable `gorm:"foreignKey:TaxTableID" json:"-"`
	Account  Account  `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tax table entry
func (e *TaxTableEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxTableEntry model
func (TaxTableEntry) TableName() string {
	return "tax_table_entries"
}
