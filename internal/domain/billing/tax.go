// Package billing is the computation core over the generic invoice model. It
// projects generic invoices into their owner-typed views and derives tax and
// settlement figures from the entity graph handed to it by a
// repository.EntitySource. Everything here is a pure function of the current
// graph: nothing is mutated, nothing is cached, and callers re-query after
// any mutation.
package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// TablePercent returns the summed applicable rate of a tax table as a
// fraction (a single 16% row yields 0.16). Value-basis rows are flat amounts
// and do not contribute to the percentage. A nil table yields zero.
func TablePercent(table *entity.TaxTable) decimal.Decimal {
	if table == nil {
		return decimal.Zero
	}
	pct := decimal.Zero
	for _, row := range table.Entries {
		if row.Basis == enum.TaxBasisPercent {
			pct = pct.Add(row.Amount)
		}
	}
	return pct.Div(hundred)
}

// EntryTaxPercent resolves the entry's tax table and returns its applicable
// rate. An absent table ID means "not taxable" and yields zero; a table ID
// the source cannot resolve is a data error, not an absence.
func EntryTaxPercent(ctx context.Context, src repository.EntitySource, entry *entity.InvoiceEntry) (decimal.Decimal, error) {
	if entry.TaxTableID == nil {
		return decimal.Zero, nil
	}
	table, err := src.TaxTableByID(ctx, *entry.TaxTableID)
	if err != nil {
		return decimal.Zero, err
	}
	if table == nil {
		return decimal.Zero, apperror.NewTaxTableNotFoundError(entry.TaxTableID.String())
	}
	return TablePercent(table), nil
}

// EntrySums holds the derived per-entry amounts. Base is the native line sum
// (price times quantity, sign preserved); which of InclTax/ExclTax equals
// Base depends on whether the stored price already includes tax.
type EntrySums struct {
	Base    decimal.Decimal `json:"base"`
	ExclTax decimal.Decimal `json:"excl_tax"`
	InclTax decimal.Decimal `json:"incl_tax"`
	Tax     decimal.Decimal `json:"tax"`
}

// ComputeEntry derives an entry's sums from its price, quantity and the
// applicable rate. Negative prices or quantities pass through unchanged;
// credit-memo lines are legitimate. A rate of -100% leaves a tax-included
// price with no recoverable net amount and is an error.
func ComputeEntry(entry *entity.InvoiceEntry, taxPercent decimal.Decimal) (EntrySums, error) {
	base := entry.Price.Mul(entry.Quantity)
	sums := EntrySums{Base: base}
	if entry.TaxIncluded {
		divisor := one.Add(taxPercent)
		if divisor.IsZero() {
			return EntrySums{}, apperror.NewInvalidTaxRateError()
		}
		sums.InclTax = base
		sums.ExclTax = base.Div(divisor)
	} else {
		sums.ExclTax = base
		sums.InclTax = base.Mul(one.Add(taxPercent))
	}
	sums.Tax = sums.InclTax.Sub(sums.ExclTax)
	return sums, nil
}

// SumEntry resolves the entry's tax table and derives its sums.
func SumEntry(ctx context.Context, src repository.EntitySource, entry *entity.InvoiceEntry) (EntrySums, error) {
	pct, err := EntryTaxPercent(ctx, src, entry)
	if err != nil {
		return EntrySums{}, err
	}
	return ComputeEntry(entry, pct)
}

// InvoiceSums holds the derived per-invoice amounts in the invoice's
// currency.
type InvoiceSums struct {
	ExclTax  decimal.Decimal `json:"excl_tax"`
	InclTax  decimal.Decimal `json:"incl_tax"`
	Tax      decimal.Decimal `json:"tax"`
	Currency string          `json:"currency"`
}

// SumInvoice aggregates the entry sums over all entries of the invoice. An
// invoice with no entries sums to zero; that is not an error.
func SumInvoice(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (InvoiceSums, error) {
	entries, err := src.EntriesOf(ctx, inv.ID)
	if err != nil {
		return InvoiceSums{}, err
	}

	sums := InvoiceSums{
		ExclTax:  decimal.Zero,
		InclTax:  decimal.Zero,
		Tax:      decimal.Zero,
		Currency: inv.CurrencyCode,
	}
	for i := range entries {
		es, err := SumEntry(ctx, src, &entries[i])
		if err != nil {
			return InvoiceSums{}, err
		}
		sums.ExclTax = sums.ExclTax.Add(es.ExclTax)
		sums.InclTax = sums.InclTax.Add(es.InclTax)
		sums.Tax = sums.Tax.Add(es.Tax)
	}
	return sums, nil
}
