package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
)

// PayingTransactions returns the ledger transactions containing at least one
// payment split whose lot matches the invoice's lot. The upstream source
// keeps no reverse index from lot to transaction, so this is a two-level
// scan. An unposted invoice has no lot and yields nothing; a split without a
// lot never matches anything, so absent-vs-absent is never a match.
func PayingTransactions(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) ([]entity.Transaction, error) {
	if inv.LotID == nil {
		return nil, nil
	}

	txns, err := src.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	var paying []entity.Transaction
	for _, txn := range txns {
		splits, err := src.SplitsOf(ctx, txn.ID)
		if err != nil {
			return nil, err
		}
		for _, s := range splits {
			if s.LotID == nil {
				continue
			}
			if *s.LotID == *inv.LotID && s.Action == enum.SplitActionPayment {
				paying = append(paying, txn)
				break
			}
		}
	}
	return paying, nil
}

// paymentSplitSum sums the values of all payment splits settling the invoice.
// Payment splits carry the opposite sign of the invoice's own document
// splits; the caller takes the absolute value to report a non-negative paid
// figure.
func paymentSplitSum(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (decimal.Decimal, error) {
	sum := decimal.Zero
	if inv.LotID == nil {
		return sum, nil
	}

	txns, err := src.Transactions(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	for _, txn := range txns {
		splits, err := src.SplitsOf(ctx, txn.ID)
		if err != nil {
			return decimal.Zero, err
		}
		for _, s := range splits {
			if s.LotID == nil {
				continue
			}
			if *s.LotID == *inv.LotID && s.Action == enum.SplitActionPayment {
				sum = sum.Add(s.Value)
			}
		}
	}
	return sum, nil
}

// AmountPaidWithTaxes returns the non-negative settled amount in the
// invoice's currency. Zero payments on a posted invoice is a normal state,
// not an error.
func AmountPaidWithTaxes(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (decimal.Decimal, error) {
	sum, err := paymentSplitSum(ctx, src, inv)
	if err != nil {
		return decimal.Zero, err
	}
	return sum.Abs(), nil
}

// Settlement is the derived payment state of an invoice, recomputed from
// current ledger data on every query.
type Settlement struct {
	AmountWithTaxes        decimal.Decimal `json:"amount_with_taxes"`
	AmountWithoutTaxes     decimal.Decimal `json:"amount_without_taxes"`
	AmountPaidWithTaxes    decimal.Decimal `json:"amount_paid_with_taxes"`
	AmountPaidWithoutTaxes decimal.Decimal `json:"amount_paid_without_taxes"`
	AmountUnpaidWithTaxes  decimal.Decimal `json:"amount_unpaid_with_taxes"`
	Currency               string          `json:"currency"`
	FullyPaid              bool            `json:"fully_paid"`
}

// Settle derives the full settlement state of an invoice.
//
// Payment splits carry no per-line tax breakdown, so the paid-without-taxes
// figure is derived proportionally from the invoice's own incl/excl ratio
// rather than from the splits. Fully-paid is exact decimal equality; the
// file format stores exact fixed-point values, so no tolerance is needed.
func Settle(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (*Settlement, error) {
	sums, err := SumInvoice(ctx, src, inv)
	if err != nil {
		return nil, err
	}

	paid, err := AmountPaidWithTaxes(ctx, src, inv)
	if err != nil {
		return nil, err
	}

	unpaid := sums.InclTax.Sub(paid)
	if unpaid.IsNegative() {
		unpaid = decimal.Zero
	}

	paidExcl := decimal.Zero
	if !sums.InclTax.IsZero() {
		paidExcl = paid.Mul(sums.ExclTax).Div(sums.InclTax)
	}

	return &Settlement{
		AmountWithTaxes:        sums.InclTax,
		AmountWithoutTaxes:     sums.ExclTax,
		AmountPaidWithTaxes:    paid,
		AmountPaidWithoutTaxes: paidExcl,
		AmountUnpaidWithTaxes:  unpaid,
		Currency:               inv.CurrencyCode,
		FullyPaid:              unpaid.IsZero(),
	}, nil
}
