package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
)

type fakeTransactionRepo struct {
	txns map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.txns[id], nil
}

func (r *fakeTransactionRepo) GetWithSplits(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.txns[id], nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.txns, id)
	return nil
}

func (r *fakeTransactionRepo) List(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *fakeTransactionRepo) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	var all []entity.Transaction
	for _, txn := range r.txns {
		all = append(all, *txn)
	}
	return all, nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) add(ownerType enum.OwnerType, posted bool) *entity.Invoice {
	invoice := &entity.Invoice{
		ID:           uuid.New(),
		OwnerType:    ownerType,
		OwnerID:      uuid.New(),
		CurrencyCode: "USD",
		DateOpened:   time.Now(),
	}
	if posted {
		lotID := uuid.New()
		invoice.LotID = &lotID
	}
	r.invoices[invoice.ID] = invoice
	return invoice
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (r *fakeInvoiceRepo) GetWithEntries(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	newService := func() (*TransactionService, *fakeInvoiceRepo) {
		invoices := newFakeInvoiceRepo()
		return NewTransactionService(newFakeTransactionRepo(), newFakeAccountRepo(), invoices), invoices
	}

	payment := func(invoiceID uuid.UUID, amount string) *RecordPaymentInput {
		return &RecordPaymentInput{
			InvoiceID:       invoiceID,
			TransferAccount: uuid.New(),
			PostingAccount:  uuid.New(),
			Amount:          decimal.RequireFromString(amount),
			DatePosted:      time.Now(),
		}
	}

	assertLotSplit := func(t *testing.T, txn *entity.Transaction, input *RecordPaymentInput, invoice *entity.Invoice) {
		t.Helper()
		require.Len(t, txn.Splits, 2)

		lot := txn.Splits[0]
		assert.Equal(t, input.PostingAccount, lot.AccountID)
		assert.Equal(t, enum.SplitActionPayment, lot.Action)
		assert.True(t, lot.Value.Equal(input.Amount.Neg()))
		require.NotNil(t, lot.LotID)
		assert.Equal(t, *invoice.LotID, *lot.LotID)

		transfer := txn.Splits[1]
		assert.Equal(t, input.TransferAccount, transfer.AccountID)
		assert.True(t, transfer.Value.Equal(input.Amount))
		assert.Nil(t, transfer.LotID)
	}

	t.Run("books the negated lot split for a customer invoice", func(t *testing.T) {
		svc, invoices := newService()
		invoice := invoices.add(enum.OwnerTypeCustomer, true)
		input := payment(invoice.ID, "100")

		txn, err := svc.RecordPayment(ctx, input)
		require.NoError(t, err)
		assertLotSplit(t, txn, input, invoice)
	})

	t.Run("vendor bills settle with the same sign convention", func(t *testing.T) {
		svc, invoices := newService()
		invoice := invoices.add(enum.OwnerTypeVendor, true)
		input := payment(invoice.ID, "250.50")

		txn, err := svc.RecordPayment(ctx, input)
		require.NoError(t, err)
		assertLotSplit(t, txn, input, invoice)
	})

	t.Run("rejects an unposted invoice", func(t *testing.T) {
		svc, invoices := newService()
		invoice := invoices.add(enum.OwnerTypeCustomer, false)

		_, err := svc.RecordPayment(ctx, payment(invoice.ID, "100"))
		require.Error(t, err)
	})

	t.Run("rejects a zero amount", func(t *testing.T) {
		svc, invoices := newService()
		invoice := invoices.add(enum.OwnerTypeCustomer, true)

		_, err := svc.RecordPayment(ctx, payment(invoice.ID, "0"))
		require.Error(t, err)
	})
}
