package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
)

// fixtureSource is an in-memory entity source for exercising the billing
// core against hand-built entity graphs.
type fixtureSource struct {
	invoices  map[uuid.UUID]*entity.Invoice
	entries   map[uuid.UUID][]entity.InvoiceEntry
	taxTables map[uuid.UUID]*entity.TaxTable
	jobs      map[uuid.UUID]*entity.Job
	txns      []entity.Transaction
	splits    map[uuid.UUID][]entity.Split
}

func newFixtureSource() *fixtureSource {
	return &fixtureSource{
		invoices:  make(map[uuid.UUID]*entity.Invoice),
		entries:   make(map[uuid.UUID][]entity.InvoiceEntry),
		taxTables: make(map[uuid.UUID]*entity.TaxTable),
		jobs:      make(map[uuid.UUID]*entity.Job),
		splits:    make(map[uuid.UUID][]entity.Split),
	}
}

func (f *fixtureSource) InvoiceByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fixtureSource) EntriesOf(_ context.Context, invoiceID uuid.UUID) ([]entity.InvoiceEntry, error) {
	return f.entries[invoiceID], nil
}

func (f *fixtureSource) TaxTableByID(_ context.Context, id uuid.UUID) (*entity.TaxTable, error) {
	return f.taxTables[id], nil
}

func (f *fixtureSource) Transactions(_ context.Context) ([]entity.Transaction, error) {
	return f.txns, nil
}

func (f *fixtureSource) SplitsOf(_ context.Context, transactionID uuid.UUID) ([]entity.Split, error) {
	return f.splits[transactionID], nil
}

func (f *fixtureSource) JobByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	return f.jobs[id], nil
}

func (f *fixtureSource) addInvoice(ownerType enum.OwnerType, ownerID uuid.UUID, posted bool) *entity.Invoice {
	inv := &entity.Invoice{
		ID:           uuid.New(),
		OwnerType:    ownerType,
		OwnerID:      ownerID,
		Number:       "INV-0001",
		CurrencyCode: "USD",
		DateOpened:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if posted {
		lot := uuid.New()
		postedAt := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		due := postedAt.AddDate(0, 1, 0)
		inv.LotID = &lot
		inv.DatePosted = &postedAt
		inv.DateDue = &due
	}
	f.invoices[inv.ID] = inv
	return inv
}

func (f *fixtureSource) addEntry(inv *entity.Invoice, price, quantity decimal.Decimal, taxTableID *uuid.UUID, taxIncluded bool) entity.InvoiceEntry {
	entry := entity.InvoiceEntry{
		ID:          uuid.New(),
		InvoiceID:   inv.ID,
		Seq:         len(f.entries[inv.ID]),
		Action:      "item",
		Price:       price,
		Quantity:    quantity,
		TaxTableID:  taxTableID,
		TaxIncluded: taxIncluded,
	}
	f.entries[inv.ID] = append(f.entries[inv.ID], entry)
	return entry
}

func (f *fixtureSource) addPercentTaxTable(t *testing.T, percent decimal.Decimal) *entity.TaxTable {
	t.Helper()
	table := &entity.TaxTable{
		ID:   uuid.New(),
		Name: "VAT",
		Entries: []entity.TaxTableEntry{
			{ID: uuid.New(), AccountID: uuid.New(), Amount: percent, Basis: enum.TaxBasisPercent},
		},
	}
	f.taxTables[table.ID] = table
	return table
}

func (f *fixtureSource) addJob(ownerType enum.OwnerType, ownerID uuid.UUID) *entity.Job {
	job := &entity.Job{
		ID:        uuid.New(),
		Number:    "JOB-0001",
		Name:      "Test Job",
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Active:    true,
	}
	f.jobs[job.ID] = job
	return job
}

// addPayment books a transaction with one payment split against the given
// lot plus a balancing asset split.
func (f *fixtureSource) addPayment(t *testing.T, lotID *uuid.UUID, value decimal.Decimal) entity.Transaction {
	t.Helper()
	require.NotNil(t, lotID, "payment fixture needs a posted invoice")

	txn := entity.Transaction{
		ID:           uuid.New(),
		CurrencyCode: "USD",
		DatePosted:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	f.txns = append(f.txns, txn)
	f.splits[txn.ID] = []entity.Split{
		{
			ID:            uuid.New(),
			TransactionID: txn.ID,
			AccountID:     uuid.New(),
			Action:        enum.SplitActionPayment,
			Value:         value,
			LotID:         lotID,
		},
		{
			ID:            uuid.New(),
			TransactionID: txn.ID,
			AccountID:     uuid.New(),
			Action:        enum.SplitActionNone,
			Value:         value.Neg(),
		},
	}
	return txn
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
