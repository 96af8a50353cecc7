package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// TransactionService handles ledger transaction operations
type TransactionService struct {
	txnRepo     repository.TransactionRepository
	accountRepo repository.AccountRepository
	invoiceRepo repository.InvoiceRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txnRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
	invoiceRepo repository.InvoiceRepository,
) *TransactionService {
	return &TransactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
	}
}

// SplitInput represents one split of a new transaction
type SplitInput struct {
	AccountID uuid.UUID
	Memo      string
	Action    enum.SplitAction
	Value     decimal.Decimal
	LotID     *uuid.UUID
}

// CreateTransactionInput represents the create transaction input
type CreateTransactionInput struct {
	Num          string
	Description  string
	CurrencyCode string
	DatePosted   time.Time
	Splits       []SplitInput
}

// CreateTransaction creates a balanced ledger transaction
func (s *TransactionService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	if len(input.Splits) < 2 {
		return nil, apperror.NewBadRequestError("A transaction needs at least two splits")
	}

	balance := decimal.Zero
	for _, split := range input.Splits {
		account, err := s.accountRepo.GetByID(ctx, split.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Account")
		}
		balance = balance.Add(split.Value)
	}
	if !balance.IsZero() {
		return nil, apperror.NewBadRequestError("Transaction splits must balance to zero")
	}

	txn := &entity.Transaction{
		Num:          input.Num,
		Description:  input.Description,
		CurrencyCode: defaultCurrency(input.CurrencyCode),
		DatePosted:   input.DatePosted,
	}
	for _, split := range input.Splits {
		txn.Splits = append(txn.Splits, entity.Split{
			AccountID: split.AccountID,
			Memo:      split.Memo,
			Action:    split.Action,
			Value:     split.Value,
			LotID:     split.LotID,
		})
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// RecordPaymentInput represents a payment applied to a posted invoice
type RecordPaymentInput struct {
	InvoiceID       uuid.UUID
	TransferAccount uuid.UUID
	PostingAccount  uuid.UUID
	Amount          decimal.Decimal
	DatePosted      time.Time
	Num             string
	Memo            string
}

// RecordPayment writes the two-split payment transaction that settles part or
// all of a posted invoice. The split on the posting account carries the
// invoice's lot and a Payment action; that pairing is what the settlement
// scan looks for.
func (s *TransactionService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Transaction, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !invoice.IsPosted() {
		return nil, apperror.NewBadRequestError("Cannot pay an unposted invoice")
	}
	if input.Amount.IsZero() {
		return nil, apperror.NewBadRequestError("Payment amount must be non-zero")
	}

	// The lot split always books the negated amount against the posting
	// account; the settlement scan matches on lot and action, not sign.
	lotValue := input.Amount.Neg()

	txn := &entity.Transaction{
		Num:          input.Num,
		Description:  input.Memo,
		CurrencyCode: invoice.CurrencyCode,
		DatePosted:   input.DatePosted,
		Splits: []entity.Split{
			{
				AccountID: input.PostingAccount,
				Memo:      input.Memo,
				Action:    enum.SplitActionPayment,
				Value:     lotValue,
				LotID:     invoice.LotID,
			},
			{
				AccountID: input.TransferAccount,
				Memo:      input.Memo,
				Action:    enum.SplitActionPayment,
				Value:     input.Amount,
			},
		},
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// GetTransaction retrieves a transaction with its splits
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetWithSplits(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// DeleteTransaction removes a transaction and its splits
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTransaction(ctx, id); err != nil {
		return err
	}
	return s.txnRepo.Delete(ctx, id)
}

// ListTransactions lists transactions with filters and pagination
func (s *TransactionService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	txns, total, err := s.txnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}
