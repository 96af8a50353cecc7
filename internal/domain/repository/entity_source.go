package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
)

// EntitySource is the read-only collaborator the billing core consumes. It
// hands out well-formed entity graphs; the core holds no state of its own and
// is re-queried after any mutation.
//
// Absence semantics: TaxTableByID returns (nil, nil) when the ID resolves to
// nothing, so callers can distinguish "not found" from infrastructure
// failures. SplitsOf returns splits in stored order.
type EntitySource interface {
	InvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	EntriesOf(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceEntry, error)
	TaxTableByID(ctx context.Context, id uuid.UUID) (*entity.TaxTable, error)
	Transactions(ctx context.Context) ([]entity.Transaction, error)
	SplitsOf(ctx context.Context, transactionID uuid.UUID) ([]entity.Split, error)
	JobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
}
