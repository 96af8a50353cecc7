package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// PartyRequest represents the shared create/update payload for customers,
// vendors and employees.
type PartyRequest struct {
	Number       string  `json:"number"`
	Name         string  `json:"name" binding:"required"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	CurrencyCode string  `json:"currency_code"`
	Active       *bool   `json:"active,omitempty"`
}

// CreateJobRequest represents the create job payload
type CreateJobRequest struct {
	Number    string         `json:"number"`
	Name      string         `json:"name" binding:"required"`
	OwnerType enum.OwnerType `json:"owner_type"`
	OwnerID   uuid.UUID      `json:"owner_id" binding:"required"`
}

// UpdateJobRequest represents the update job payload
type UpdateJobRequest struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}

// CreateAccountRequest represents the create account payload
type CreateAccountRequest struct {
	ParentID     *uuid.UUID       `json:"parent_id,omitempty"`
	Name         string           `json:"name" binding:"required"`
	Code         string           `json:"code"`
	Description  string           `json:"description"`
	Type         enum.AccountType `json:"type"`
	CurrencyCode string           `json:"currency_code"`
}

// UpdateAccountRequest represents the update account payload
type UpdateAccountRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// TaxTableEntryRequest represents one row of a new tax table
type TaxTableEntryRequest struct {
	AccountID uuid.UUID       `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Basis     enum.TaxBasis   `json:"basis"`
}

// CreateTaxTableRequest represents the create tax table payload
type CreateTaxTableRequest struct {
	Name    string                 `json:"name" binding:"required"`
	Entries []TaxTableEntryRequest `json:"entries" binding:"required,min=1"`
}

// SplitRequest represents one split of a new transaction
type SplitRequest struct {
	AccountID uuid.UUID        `json:"account_id" binding:"required"`
	Memo      string           `json:"memo"`
	Action    enum.SplitAction `json:"action"`
	Value     decimal.Decimal  `json:"value"`
	LotID     *uuid.UUID       `json:"lot_id,omitempty"`
}

// CreateTransactionRequest represents the create transaction payload
type CreateTransactionRequest struct {
	Num          string         `json:"num"`
	Description  string         `json:"description"`
	CurrencyCode string         `json:"currency_code"`
	DatePosted   time.Time      `json:"date_posted"`
	Splits       []SplitRequest `json:"splits" binding:"required,min=2"`
}

// RecordPaymentRequest represents the record payment payload
type RecordPaymentRequest struct {
	InvoiceID       uuid.UUID       `json:"invoice_id" binding:"required"`
	TransferAccount uuid.UUID       `json:"transfer_account" binding:"required"`
	PostingAccount  uuid.UUID       `json:"posting_account" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	DatePosted      time.Time       `json:"date_posted"`
	Num             string          `json:"num"`
	Memo            string          `json:"memo"`
}

// CreateInvoiceRequest represents the create invoice payload
type CreateInvoiceRequest struct {
	OwnerType    enum.OwnerType `json:"owner_type"`
	OwnerID      uuid.UUID      `json:"owner_id" binding:"required"`
	Number       string         `json:"number"`
	Description  string         `json:"description"`
	CurrencyCode string         `json:"currency_code"`
	DateOpened   time.Time      `json:"date_opened"`
}

// AddEntryRequest represents the add invoice entry payload
type AddEntryRequest struct {
	Description string          `json:"description"`
	Action      string          `json:"action"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	TaxTableID  *uuid.UUID      `json:"tax_table_id,omitempty"`
	TaxIncluded bool            `json:"tax_included"`
}

// PostInvoiceRequest represents the post invoice payload
type PostInvoiceRequest struct {
	DatePosted time.Time `json:"date_posted"`
	DateDue    time.Time `json:"date_due"`
}
