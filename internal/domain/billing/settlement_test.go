package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
)

func TestPayingTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("unposted invoice yields no payments", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)

		txns, err := PayingTransactions(ctx, src, inv)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("lotless splits never match, even against a lotless invoice", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)

		// A payment split with no lot at all.
		txn := entity.Transaction{ID: uuid.New(), CurrencyCode: "USD"}
		src.txns = append(src.txns, txn)
		src.splits[txn.ID] = []entity.Split{
			{ID: uuid.New(), TransactionID: txn.ID, AccountID: uuid.New(), Action: enum.SplitActionPayment, Value: dec(t, "-100")},
		}

		txns, err := PayingTransactions(ctx, src, inv)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("matching lot with Payment action is found", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)
		paying := src.addPayment(t, inv.LotID, dec(t, "-232"))

		txns, err := PayingTransactions(ctx, src, inv)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, paying.ID, txns[0].ID)
	})

	t.Run("matching lot with a non-payment action is ignored", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)

		txn := entity.Transaction{ID: uuid.New(), CurrencyCode: "USD"}
		src.txns = append(src.txns, txn)
		src.splits[txn.ID] = []entity.Split{
			{ID: uuid.New(), TransactionID: txn.ID, AccountID: uuid.New(), Action: enum.SplitActionInvoice, Value: dec(t, "232"), LotID: inv.LotID},
		}

		txns, err := PayingTransactions(ctx, src, inv)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("a foreign lot does not settle this invoice", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)
		other := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)
		src.addPayment(t, other.LotID, dec(t, "-232"))

		txns, err := PayingTransactions(ctx, src, inv)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	newPostedInvoice := func(t *testing.T) (*fixtureSource, *entity.Invoice) {
		t.Helper()
		src := newFixtureSource()
		table := src.addPercentTaxTable(t, dec(t, "16"))
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)
		src.addEntry(inv, dec(t, "100"), dec(t, "2"), &table.ID, false)
		return src, inv
	}

	t.Run("full payment settles the invoice", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-232"))

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountWithTaxes.Equal(dec(t, "232")))
		assert.True(t, s.AmountPaidWithTaxes.Equal(dec(t, "232")))
		assert.True(t, s.AmountUnpaidWithTaxes.IsZero())
		assert.True(t, s.FullyPaid)
	})

	t.Run("partial payment leaves the remainder unpaid", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-100"))

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountPaidWithTaxes.Equal(dec(t, "100")))
		assert.True(t, s.AmountUnpaidWithTaxes.Equal(dec(t, "132")))
		assert.False(t, s.FullyPaid)
	})

	t.Run("posted invoice with zero payments is fully unpaid, not an error", func(t *testing.T) {
		src, inv := newPostedInvoice(t)

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountPaidWithTaxes.IsZero())
		assert.True(t, s.AmountUnpaidWithTaxes.Equal(dec(t, "232")))
		assert.False(t, s.FullyPaid)
	})

	t.Run("unposted invoice owes its full amount", func(t *testing.T) {
		src := newFixtureSource()
		table := src.addPercentTaxTable(t, dec(t, "16"))
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		src.addEntry(inv, dec(t, "100"), dec(t, "2"), &table.ID, false)

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountPaidWithTaxes.IsZero())
		assert.True(t, s.AmountUnpaidWithTaxes.Equal(dec(t, "232")))
		assert.False(t, s.FullyPaid)
	})

	t.Run("zero-entry invoice owes nothing and is fully paid", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountWithTaxes.IsZero())
		assert.True(t, s.FullyPaid)
	})

	t.Run("overpayment floors unpaid at zero", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-300"))

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountUnpaidWithTaxes.IsZero())
		assert.True(t, s.FullyPaid)
	})

	t.Run("payments across multiple transactions accumulate", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-100"))
		src.addPayment(t, inv.LotID, dec(t, "-132"))

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountPaidWithTaxes.Equal(dec(t, "232")))
		assert.True(t, s.FullyPaid)
	})

	t.Run("paid plus unpaid equals total while not overpaid", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-150"))

		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountPaidWithTaxes.Add(s.AmountUnpaidWithTaxes).Equal(s.AmountWithTaxes))
	})

	t.Run("paid without taxes derives proportionally", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-116"))

		// Half of 232 paid; the tax-free share of that half is 100.
		s, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, s.AmountPaidWithoutTaxes.Equal(dec(t, "100")))
	})

	t.Run("repeated settlement queries are identical", func(t *testing.T) {
		src, inv := newPostedInvoice(t)
		src.addPayment(t, inv.LotID, dec(t, "-150"))

		first, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		second, err := Settle(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, first.AmountPaidWithTaxes.Equal(second.AmountPaidWithTaxes))
		assert.True(t, first.AmountUnpaidWithTaxes.Equal(second.AmountUnpaidWithTaxes))
		assert.Equal(t, first.FullyPaid, second.FullyPaid)
	})
}
