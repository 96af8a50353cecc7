package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// Invoice is the owner-agnostic stored representation from which customer
// invoices, vendor bills, employee vouchers and job invoices are projected.
// Owner type and owner ID are fixed at creation; the owner type decides which
// projections are legal.
type Invoice struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerType    enum.OwnerType `gorm:"not null;index" json:"owner_type"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Number       string         `gorm:"size:100;not null" json:"number"`
	Description  string         `gorm:"type:text" json:"description"`
	CurrencyCode string         `gorm:"size:3;not null" json:"currency_code"`
	DateOpened   time.Time      `gorm:"type:date;not null" json:"date_opened"`
	DatePosted   *time.Time     `gorm:"type:date" json:"date_posted,omitempty"`
	DateDue      *time.Time     `gorm:"type:date" json:"date_due,omitempty"`
	LotID        *uuid.UUID     `gorm:"type:uuid;index" json:"lot_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Entries []InvoiceEntry `gorm:"foreignKey:InvoiceID" json:"entries,omitempty"`
}

// IsPosted reports whether the invoice has been posted to the ledger. An
// unposted invoice has no lot and therefore cannot have payments.
func (i *Invoice) IsPosted() bool {
	return i.LotID != nil
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceEntry is one line item of an invoice. Quantity must be non-negative;
// price carries the document's debit/credit sign and is never clamped.
type InvoiceEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Seq         int             `gorm:"not null;default:0" json:"seq"`
	Description string          `gorm:"type:text" json:"description"`
	Action      string          `gorm:"size:50" json:"action"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	TaxTableID  *uuid.UUID      `gorm:"type:uuid" json:"tax_table_id,omitempty"`
	TaxIncluded bool            `gorm:"not null;default:false" json:"tax_included"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice entry
func (e *InvoiceEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceEntry model
func (InvoiceEntry) TableName() string {
	return "invoice_entries"
}
