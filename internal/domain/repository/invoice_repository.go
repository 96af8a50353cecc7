package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// InvoiceRepository defines the interface for generic invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	GetWithEntries(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	OwnerType  *enum.OwnerType
	OwnerID    *uuid.UUID
	Posted     *bool
	StartDate  *time.Time
	EndDate    *time.Time
}

// InvoiceEntryRepository defines the interface for invoice entry data operations
type InvoiceEntryRepository interface {
	Create(ctx context.Context, entry *entity.InvoiceEntry) error
	CreateBatch(ctx context.Context, entries []entity.InvoiceEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceEntry, error)
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceEntry, error)
	Update(ctx context.Context, entry *entity.InvoiceEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
