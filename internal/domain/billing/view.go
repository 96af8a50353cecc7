package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
	"github.com/finbook/bookfile-api/pkg/money"
)

// view is the shared projection over a generic invoice. The four owner-typed
// views embed it; each is a distinct type, so an accessor that belongs to a
// different owner type does not exist on the wrong view at all. Views are
// pure: they never mutate the underlying invoice.
type view struct {
	inv *entity.Invoice
	src repository.EntitySource
}

// resolveOwner checks the invoice's owner discriminant against the expected
// type, following a job owner through to its ultimate owner. It returns the
// resolved party ID or a wrong-invoice-type error.
func resolveOwner(ctx context.Context, src repository.EntitySource, inv *entity.Invoice, want enum.OwnerType) (uuid.UUID, error) {
	if inv.OwnerType == want {
		return inv.OwnerID, nil
	}
	if inv.OwnerType == enum.OwnerTypeJob && want != enum.OwnerTypeJob {
		job, err := src.JobByID(ctx, inv.OwnerID)
		if err != nil {
			return uuid.Nil, err
		}
		if job == nil {
			return uuid.Nil, apperror.NewNotFoundError("Job " + inv.OwnerID.String())
		}
		if job.OwnerType == want {
			return job.OwnerID, nil
		}
		return uuid.Nil, apperror.NewWrongInvoiceTypeError(want.String(), "Job("+job.OwnerType.String()+")")
	}
	return uuid.Nil, apperror.NewWrongInvoiceTypeError(want.String(), inv.OwnerType.String())
}

// ID returns the generic invoice's ID.
func (v *view) ID() uuid.UUID { return v.inv.ID }

// Number returns the document number.
func (v *view) Number() string { return v.inv.Number }

// Description returns the document description.
func (v *view) Description() string { return v.inv.Description }

// Currency returns the invoice's ISO currency code.
func (v *view) Currency() string { return v.inv.CurrencyCode }

// DateOpened returns the date the document was opened.
func (v *view) DateOpened() time.Time { return v.inv.DateOpened }

// DatePosted returns the posting date, or nil while unposted.
func (v *view) DatePosted() *time.Time { return v.inv.DatePosted }

// DateDue returns the due date, or nil while unposted.
func (v *view) DateDue() *time.Time { return v.inv.DateDue }

// IsPosted reports whether the document has been posted.
func (v *view) IsPosted() bool { return v.inv.IsPosted() }

// Generic returns the underlying generic invoice.
func (v *view) Generic() *entity.Invoice { return v.inv }

// Entries returns the document's line items in document order.
func (v *view) Entries(ctx context.Context) ([]Entry, error) {
	raw, err := v.src.EntriesOf(ctx, v.inv.ID)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(raw))
	for i := range raw {
		entries[i] = Entry{entry: raw[i], currency: v.inv.CurrencyCode, src: v.src}
	}
	return entries, nil
}

// Sums returns the invoice's aggregated tax-inclusive/exclusive amounts.
func (v *view) Sums(ctx context.Context) (InvoiceSums, error) {
	return SumInvoice(ctx, v.src, v.inv)
}

// AmountWithTaxes returns the total owed including taxes.
func (v *view) AmountWithTaxes(ctx context.Context) (decimal.Decimal, error) {
	sums, err := v.Sums(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sums.InclTax, nil
}

// AmountWithoutTaxes returns the total owed excluding taxes.
func (v *view) AmountWithoutTaxes(ctx context.Context) (decimal.Decimal, error) {
	sums, err := v.Sums(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sums.ExclTax, nil
}

// AmountPaidWithTaxes returns the settled amount including taxes.
func (v *view) AmountPaidWithTaxes(ctx context.Context) (decimal.Decimal, error) {
	return AmountPaidWithTaxes(ctx, v.src, v.inv)
}

// AmountPaidWithoutTaxes returns the settled amount excluding taxes, derived
// proportionally from the invoice's incl/excl ratio.
func (v *view) AmountPaidWithoutTaxes(ctx context.Context) (decimal.Decimal, error) {
	s, err := Settle(ctx, v.src, v.inv)
	if err != nil {
		return decimal.Zero, err
	}
	return s.AmountPaidWithoutTaxes, nil
}

// AmountUnpaidWithTaxes returns the outstanding amount, floored at zero.
func (v *view) AmountUnpaidWithTaxes(ctx context.Context) (decimal.Decimal, error) {
	s, err := Settle(ctx, v.src, v.inv)
	if err != nil {
		return decimal.Zero, err
	}
	return s.AmountUnpaidWithTaxes, nil
}

// IsFullyPaid reports whether the unpaid-with-taxes amount is exactly zero.
func (v *view) IsFullyPaid(ctx context.Context) (bool, error) {
	s, err := Settle(ctx, v.src, v.inv)
	if err != nil {
		return false, err
	}
	return s.FullyPaid, nil
}

// IsNotFullyPaid is the logical complement of IsFullyPaid.
func (v *view) IsNotFullyPaid(ctx context.Context) (bool, error) {
	paid, err := v.IsFullyPaid(ctx)
	if err != nil {
		return false, err
	}
	return !paid, nil
}

// PayingTransactions returns the ledger transactions settling this document.
func (v *view) PayingTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return PayingTransactions(ctx, v.src, v.inv)
}

// Settlement returns the full derived payment state.
func (v *view) Settlement(ctx context.Context) (*Settlement, error) {
	return Settle(ctx, v.src, v.inv)
}

func (v *view) formatAmount(ctx context.Context, locale string, f func(context.Context) (decimal.Decimal, error)) (string, error) {
	amount, err := f(ctx)
	if err != nil {
		return "", err
	}
	return money.FormatAmount(amount, v.inv.CurrencyCode, locale)
}

// AmountWithTaxesFormatted renders AmountWithTaxes per the locale's currency
// rules. Formatted accessors propagate the same errors as their plain
// counterparts; they never substitute placeholder strings.
func (v *view) AmountWithTaxesFormatted(ctx context.Context, locale string) (string, error) {
	return v.formatAmount(ctx, locale, v.AmountWithTaxes)
}

// AmountWithoutTaxesFormatted renders AmountWithoutTaxes for the locale.
func (v *view) AmountWithoutTaxesFormatted(ctx context.Context, locale string) (string, error) {
	return v.formatAmount(ctx, locale, v.AmountWithoutTaxes)
}

// AmountPaidWithTaxesFormatted renders AmountPaidWithTaxes for the locale.
func (v *view) AmountPaidWithTaxesFormatted(ctx context.Context, locale string) (string, error) {
	return v.formatAmount(ctx, locale, v.AmountPaidWithTaxes)
}

// AmountPaidWithoutTaxesFormatted renders AmountPaidWithoutTaxes for the locale.
func (v *view) AmountPaidWithoutTaxesFormatted(ctx context.Context, locale string) (string, error) {
	return v.formatAmount(ctx, locale, v.AmountPaidWithoutTaxes)
}

// AmountUnpaidWithTaxesFormatted renders AmountUnpaidWithTaxes for the locale.
func (v *view) AmountUnpaidWithTaxesFormatted(ctx context.Context, locale string) (string, error) {
	return v.formatAmount(ctx, locale, v.AmountUnpaidWithTaxes)
}

// Entry is the shared projection over one invoice line item.
type Entry struct {
	entry    entity.InvoiceEntry
	currency string
	src      repository.EntitySource
}

// ID returns the entry's ID.
func (e *Entry) ID() uuid.UUID { return e.entry.ID }

// InvoiceID returns the owning invoice's ID.
func (e *Entry) InvoiceID() uuid.UUID { return e.entry.InvoiceID }

// Description returns the line description.
func (e *Entry) Description() string { return e.entry.Description }

// Action returns the free-form action code ("hours", "item", ...).
func (e *Entry) Action() string { return e.entry.Action }

// Price returns the unit price, sign preserved.
func (e *Entry) Price() decimal.Decimal { return e.entry.Price }

// Quantity returns the quantity.
func (e *Entry) Quantity() decimal.Decimal { return e.entry.Quantity }

// TaxIncluded reports whether the stored price already includes tax.
func (e *Entry) TaxIncluded() bool { return e.entry.TaxIncluded }

// TaxTable resolves the entry's tax table, or nil when the entry is not
// taxable.
func (e *Entry) TaxTable(ctx context.Context) (*entity.TaxTable, error) {
	if e.entry.TaxTableID == nil {
		return nil, nil
	}
	table, err := e.src.TaxTableByID(ctx, *e.entry.TaxTableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewTaxTableNotFoundError(e.entry.TaxTableID.String())
	}
	return table, nil
}

// ApplicableTaxPercent returns the entry's applicable rate as a fraction.
func (e *Entry) ApplicableTaxPercent(ctx context.Context) (decimal.Decimal, error) {
	return EntryTaxPercent(ctx, e.src, &e.entry)
}

// IsTaxable reports whether the applicable rate is non-zero.
func (e *Entry) IsTaxable(ctx context.Context) (bool, error) {
	pct, err := e.ApplicableTaxPercent(ctx)
	if err != nil {
		return false, err
	}
	return !pct.IsZero(), nil
}

// Sums derives the entry's native/inclusive/exclusive sums.
func (e *Entry) Sums(ctx context.Context) (EntrySums, error) {
	return SumEntry(ctx, e.src, &e.entry)
}

// Sum returns the native line sum (price times quantity).
func (e *Entry) Sum(ctx context.Context) (decimal.Decimal, error) {
	sums, err := e.Sums(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sums.Base, nil
}

// SumInclTax returns the tax-inclusive line sum.
func (e *Entry) SumInclTax(ctx context.Context) (decimal.Decimal, error) {
	sums, err := e.Sums(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sums.InclTax, nil
}

// SumExclTax returns the tax-exclusive line sum.
func (e *Entry) SumExclTax(ctx context.Context) (decimal.Decimal, error) {
	sums, err := e.Sums(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sums.ExclTax, nil
}

// PriceFormatted renders the unit price for the locale.
func (e *Entry) PriceFormatted(locale string) (string, error) {
	return money.FormatAmount(e.entry.Price, e.currency, locale)
}

// SumFormatted renders the native line sum for the locale.
func (e *Entry) SumFormatted(ctx context.Context, locale string) (string, error) {
	sum, err := e.Sum(ctx)
	if err != nil {
		return "", err
	}
	return money.FormatAmount(sum, e.currency, locale)
}

// SumInclTaxFormatted renders the tax-inclusive line sum for the locale.
func (e *Entry) SumInclTaxFormatted(ctx context.Context, locale string) (string, error) {
	sum, err := e.SumInclTax(ctx)
	if err != nil {
		return "", err
	}
	return money.FormatAmount(sum, e.currency, locale)
}

// SumExclTaxFormatted renders the tax-exclusive line sum for the locale.
func (e *Entry) SumExclTaxFormatted(ctx context.Context, locale string) (string, error) {
	sum, err := e.SumExclTax(ctx)
	if err != nil {
		return "", err
	}
	return money.FormatAmount(sum, e.currency, locale)
}

// ApplicableTaxPercentFormatted renders the applicable rate per the locale's
// percentage rules.
func (e *Entry) ApplicableTaxPercentFormatted(ctx context.Context, locale string) (string, error) {
	pct, err := e.ApplicableTaxPercent(ctx)
	if err != nil {
		return "", err
	}
	return money.FormatPercent(pct, locale)
}
