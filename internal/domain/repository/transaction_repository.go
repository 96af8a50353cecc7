package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// TransactionRepository defines the interface for ledger transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetWithSplits(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	ListAll(ctx context.Context) ([]entity.Transaction, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	AccountID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// SplitRepository defines the interface for split data operations
type SplitRepository interface {
	CreateBatch(ctx context.Context, splits []entity.Split) error
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]entity.Split, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Split, error)
}
