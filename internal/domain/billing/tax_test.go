package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/pkg/apperror"
)

func TestTablePercent(t *testing.T) {
	t.Run("nil table yields zero", func(t *testing.T) {
		assert.True(t, TablePercent(nil).IsZero())
	})

	t.Run("percent rows sum into a fraction", func(t *testing.T) {
		table := &entity.TaxTable{
			Entries: []entity.TaxTableEntry{
				{Amount: dec(t, "16"), Basis: enum.TaxBasisPercent},
				{Amount: dec(t, "3"), Basis: enum.TaxBasisPercent},
			},
		}
		assert.True(t, TablePercent(table).Equal(dec(t, "0.19")))
	})

	t.Run("value rows do not contribute", func(t *testing.T) {
		table := &entity.TaxTable{
			Entries: []entity.TaxTableEntry{
				{Amount: dec(t, "16"), Basis: enum.TaxBasisPercent},
				{Amount: dec(t, "5"), Basis: enum.TaxBasisValue},
			},
		}
		assert.True(t, TablePercent(table).Equal(dec(t, "0.16")))
	})
}

func TestEntryTaxPercent(t *testing.T) {
	ctx := context.Background()

	t.Run("absent tax table ID means not taxable", func(t *testing.T) {
		src := newFixtureSource()
		entry := &entity.InvoiceEntry{Price: dec(t, "100"), Quantity: dec(t, "1")}

		pct, err := EntryTaxPercent(ctx, src, entry)
		require.NoError(t, err)
		assert.True(t, pct.IsZero())
	})

	t.Run("unresolvable tax table is an error, not an absence", func(t *testing.T) {
		src := newFixtureSource()
		missing := uuid.New()
		entry := &entity.InvoiceEntry{TaxTableID: &missing}

		_, err := EntryTaxPercent(ctx, src, entry)
		require.Error(t, err)
		assert.True(t, apperror.IsTaxTableNotFound(err))
	})

	t.Run("resolvable table yields its rate", func(t *testing.T) {
		src := newFixtureSource()
		table := src.addPercentTaxTable(t, dec(t, "16"))
		entry := &entity.InvoiceEntry{TaxTableID: &table.ID}

		pct, err := EntryTaxPercent(ctx, src, entry)
		require.NoError(t, err)
		assert.True(t, pct.Equal(dec(t, "0.16")))
	})
}

func TestComputeEntry(t *testing.T) {
	t.Run("tax excluded price", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "100"), Quantity: dec(t, "2")}
		sums, err := ComputeEntry(entry, dec(t, "0.16"))
		require.NoError(t, err)

		assert.True(t, sums.Base.Equal(dec(t, "200")))
		assert.True(t, sums.ExclTax.Equal(dec(t, "200")))
		assert.True(t, sums.InclTax.Equal(dec(t, "232")))
		assert.True(t, sums.Tax.Equal(dec(t, "32")))
	})

	t.Run("tax included price", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "116"), Quantity: dec(t, "2"), TaxIncluded: true}
		sums, err := ComputeEntry(entry, dec(t, "0.16"))
		require.NoError(t, err)

		assert.True(t, sums.Base.Equal(dec(t, "232")))
		assert.True(t, sums.InclTax.Equal(dec(t, "232")))
		assert.True(t, sums.ExclTax.Equal(dec(t, "200")))
		assert.True(t, sums.Tax.Equal(dec(t, "32")))
	})

	t.Run("zero rate makes both sums equal", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "59.99"), Quantity: dec(t, "3")}
		sums, err := ComputeEntry(entry, decimal.Zero)
		require.NoError(t, err)

		assert.True(t, sums.InclTax.Equal(sums.ExclTax))
		assert.True(t, sums.Tax.IsZero())
	})

	t.Run("negative amounts pass through unclamped", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "-50"), Quantity: dec(t, "2")}
		sums, err := ComputeEntry(entry, dec(t, "0.16"))
		require.NoError(t, err)

		assert.True(t, sums.ExclTax.Equal(dec(t, "-100")))
		assert.True(t, sums.InclTax.Equal(dec(t, "-116")))
	})

	t.Run("tax difference matches rate exactly", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "19.90"), Quantity: dec(t, "7")}
		pct := dec(t, "0.19")
		sums, err := ComputeEntry(entry, pct)
		require.NoError(t, err)

		assert.True(t, sums.InclTax.Sub(sums.ExclTax).Equal(sums.ExclTax.Mul(pct)))
	})

	t.Run("a -100% rate cannot decompose a tax-included price", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "100"), Quantity: dec(t, "1"), TaxIncluded: true}
		_, err := ComputeEntry(entry, dec(t, "-1"))
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidTaxRate))
	})

	t.Run("a -100% rate on a tax-excluded price still sums", func(t *testing.T) {
		entry := &entity.InvoiceEntry{Price: dec(t, "100"), Quantity: dec(t, "1")}
		sums, err := ComputeEntry(entry, dec(t, "-1"))
		require.NoError(t, err)
		assert.True(t, sums.InclTax.IsZero())
	})
}

func TestSumInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("invoice with no entries sums to zero", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)

		sums, err := SumInvoice(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, sums.InclTax.IsZero())
		assert.True(t, sums.ExclTax.IsZero())
		assert.True(t, sums.Tax.IsZero())
		assert.Equal(t, "USD", sums.Currency)
	})

	t.Run("entries aggregate across mixed tax treatment", func(t *testing.T) {
		src := newFixtureSource()
		table := src.addPercentTaxTable(t, dec(t, "16"))
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		src.addEntry(inv, dec(t, "100"), dec(t, "2"), &table.ID, false)
		src.addEntry(inv, dec(t, "50"), dec(t, "1"), nil, false)

		sums, err := SumInvoice(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, sums.ExclTax.Equal(dec(t, "250")))
		assert.True(t, sums.InclTax.Equal(dec(t, "282")))
		assert.True(t, sums.Tax.Equal(dec(t, "32")))
	})

	t.Run("broken tax reference surfaces, never silently non-taxable", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		missing := uuid.New()
		src.addEntry(inv, dec(t, "100"), dec(t, "1"), &missing, false)

		_, err := SumInvoice(ctx, src, inv)
		require.Error(t, err)
		assert.True(t, apperror.IsTaxTableNotFound(err))
	})

	t.Run("repeated queries are identical", func(t *testing.T) {
		src := newFixtureSource()
		table := src.addPercentTaxTable(t, dec(t, "16"))
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		src.addEntry(inv, dec(t, "100"), dec(t, "2"), &table.ID, false)

		first, err := SumInvoice(ctx, src, inv)
		require.NoError(t, err)
		second, err := SumInvoice(ctx, src, inv)
		require.NoError(t, err)
		assert.True(t, first.InclTax.Equal(second.InclTax))
		assert.True(t, first.ExclTax.Equal(second.ExclTax))
	})
}
