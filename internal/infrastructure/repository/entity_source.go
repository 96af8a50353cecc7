package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	domainRepo "github.com/finbook/bookfile-api/internal/domain/repository"
)

// entitySource aggregates the persisted graph behind the read-only interface
// the billing core consumes. It delegates to the individual repositories so
// absence semantics stay in one place.
type entitySource struct {
	invoices     domainRepo.InvoiceRepository
	entries      domainRepo.InvoiceEntryRepository
	taxTables    domainRepo.TaxTableRepository
	transactions domainRepo.TransactionRepository
	splits       domainRepo.SplitRepository
	jobs         domainRepo.JobRepository
}

// NewEntitySource creates the billing core's data source on top of the
// database connection.
func NewEntitySource(db *gorm.DB) domainRepo.EntitySource {
	return &entitySource{
		invoices:     NewInvoiceRepository(db),
		entries:      NewInvoiceEntryRepository(db),
		taxTables:    NewTaxTableRepository(db),
		transactions: NewTransactionRepository(db),
		splits:       NewSplitRepository(db),
		jobs:         NewJobRepository(db),
	}
}

func (s *entitySource) InvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *entitySource) EntriesOf(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceEntry, error) {
	return s.entries.GetByInvoiceID(ctx, invoiceID)
}

func (s *entitySource) TaxTableByID(ctx context.Context, id uuid.UUID) (*entity.TaxTable, error) {
	return s.taxTables.GetByID(ctx, id)
}

func (s *entitySource) Transactions(ctx context.Context) ([]entity.Transaction, error) {
	return s.transactions.ListAll(ctx)
}

func (s *entitySource) SplitsOf(ctx context.Context, transactionID uuid.UUID) ([]entity.Split, error) {
	return s.splits.GetByTransactionID(ctx, transactionID)
}

func (s *entitySource) JobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	return s.jobs.GetByID(ctx, id)
}
