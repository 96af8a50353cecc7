package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/pkg/apperror"
)

func TestCustomerInvoiceTypeGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("customer-owned invoice projects", func(t *testing.T) {
		src := newFixtureSource()
		customerID := uuid.New()
		inv := src.addInvoice(enum.OwnerTypeCustomer, customerID, false)

		v, err := NewCustomerInvoice(ctx, src, inv)
		require.NoError(t, err)
		assert.Equal(t, customerID, v.CustomerID())
	})

	t.Run("vendor-owned invoice is rejected", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeVendor, uuid.New(), false)

		_, err := NewCustomerInvoice(ctx, src, inv)
		require.Error(t, err)
		assert.True(t, apperror.IsWrongInvoiceType(err))
	})

	t.Run("customer job routes to the customer", func(t *testing.T) {
		src := newFixtureSource()
		customerID := uuid.New()
		job := src.addJob(enum.OwnerTypeCustomer, customerID)
		inv := src.addInvoice(enum.OwnerTypeJob, job.ID, false)

		v, err := NewCustomerInvoice(ctx, src, inv)
		require.NoError(t, err)
		assert.Equal(t, customerID, v.CustomerID())
	})

	t.Run("vendor job is rejected", func(t *testing.T) {
		src := newFixtureSource()
		job := src.addJob(enum.OwnerTypeVendor, uuid.New())
		inv := src.addInvoice(enum.OwnerTypeJob, job.ID, false)

		_, err := NewCustomerInvoice(ctx, src, inv)
		require.Error(t, err)
		assert.True(t, apperror.IsWrongInvoiceType(err))
	})
}

func TestVendorBillTypeGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("customer-owned invoice is rejected before any arithmetic", func(t *testing.T) {
		src := newFixtureSource()
		// Poisoned entry graph: projection must fail on the owner check and
		// never reach the tax computation.
		missing := uuid.New()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		src.addEntry(inv, dec(t, "100"), dec(t, "1"), &missing, false)

		_, err := NewVendorBill(ctx, src, inv)
		require.Error(t, err)
		assert.True(t, apperror.IsWrongInvoiceType(err))
	})

	t.Run("vendor-owned invoice projects", func(t *testing.T) {
		src := newFixtureSource()
		vendorID := uuid.New()
		inv := src.addInvoice(enum.OwnerTypeVendor, vendorID, false)

		v, err := NewVendorBill(ctx, src, inv)
		require.NoError(t, err)
		assert.Equal(t, vendorID, v.VendorID())
	})

	t.Run("vendor job routes to the vendor", func(t *testing.T) {
		src := newFixtureSource()
		vendorID := uuid.New()
		job := src.addJob(enum.OwnerTypeVendor, vendorID)
		inv := src.addInvoice(enum.OwnerTypeJob, job.ID, false)

		v, err := NewVendorBill(ctx, src, inv)
		require.NoError(t, err)
		assert.Equal(t, vendorID, v.VendorID())
	})
}

func TestEmployeeVoucherTypeGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("employee-owned invoice projects", func(t *testing.T) {
		src := newFixtureSource()
		employeeID := uuid.New()
		inv := src.addInvoice(enum.OwnerTypeEmployee, employeeID, false)

		v, err := NewEmployeeVoucher(ctx, src, inv)
		require.NoError(t, err)
		assert.Equal(t, employeeID, v.EmployeeID())
	})

	t.Run("jobs never route to employees", func(t *testing.T) {
		src := newFixtureSource()
		job := src.addJob(enum.OwnerTypeCustomer, uuid.New())
		inv := src.addInvoice(enum.OwnerTypeJob, job.ID, false)

		_, err := NewEmployeeVoucher(ctx, src, inv)
		require.Error(t, err)
		assert.True(t, apperror.IsWrongInvoiceType(err))
	})
}

func TestJobInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("any job owner projects regardless of ultimate type", func(t *testing.T) {
		src := newFixtureSource()
		vendorID := uuid.New()
		job := src.addJob(enum.OwnerTypeVendor, vendorID)
		inv := src.addInvoice(enum.OwnerTypeJob, job.ID, false)

		v, err := NewJobInvoice(ctx, src, inv)
		require.NoError(t, err)
		assert.Equal(t, job.ID, v.JobID())
		assert.Equal(t, enum.OwnerTypeVendor, v.UltimateOwnerType())
		assert.Equal(t, vendorID, v.UltimateOwnerID())
	})

	t.Run("non-job owner is rejected", func(t *testing.T) {
		src := newFixtureSource()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)

		_, err := NewJobInvoice(ctx, src, inv)
		require.Error(t, err)
		assert.True(t, apperror.IsWrongInvoiceType(err))
	})
}

func TestViewAmounts(t *testing.T) {
	ctx := context.Background()

	src := newFixtureSource()
	table := src.addPercentTaxTable(t, dec(t, "16"))
	inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), true)
	src.addEntry(inv, dec(t, "100"), dec(t, "2"), &table.ID, false)
	src.addPayment(t, inv.LotID, dec(t, "-232"))

	v, err := NewCustomerInvoice(ctx, src, inv)
	require.NoError(t, err)

	t.Run("amounts delegate to the tax and settlement engines", func(t *testing.T) {
		with, err := v.AmountWithTaxes(ctx)
		require.NoError(t, err)
		assert.True(t, with.Equal(dec(t, "232")))

		without, err := v.AmountWithoutTaxes(ctx)
		require.NoError(t, err)
		assert.True(t, without.Equal(dec(t, "200")))

		paid, err := v.AmountPaidWithTaxes(ctx)
		require.NoError(t, err)
		assert.True(t, paid.Equal(dec(t, "232")))

		fullyPaid, err := v.IsFullyPaid(ctx)
		require.NoError(t, err)
		assert.True(t, fullyPaid)

		notFullyPaid, err := v.IsNotFullyPaid(ctx)
		require.NoError(t, err)
		assert.False(t, notFullyPaid)
	})

	t.Run("paying transactions surface through the view", func(t *testing.T) {
		txns, err := v.PayingTransactions(ctx)
		require.NoError(t, err)
		assert.Len(t, txns, 1)
	})

	t.Run("entry views expose line vocabulary", func(t *testing.T) {
		entries, err := v.InvoiceEntries(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		e := entries[0]
		assert.True(t, e.Price().Equal(dec(t, "100")))
		assert.True(t, e.Quantity().Equal(dec(t, "2")))

		taxable, err := e.IsTaxable(ctx)
		require.NoError(t, err)
		assert.True(t, taxable)

		pct, err := e.ApplicableTaxPercent(ctx)
		require.NoError(t, err)
		assert.True(t, pct.Equal(dec(t, "0.16")))

		incl, err := e.SumInclTax(ctx)
		require.NoError(t, err)
		assert.True(t, incl.Equal(dec(t, "232")))

		excl, err := e.SumExclTax(ctx)
		require.NoError(t, err)
		assert.True(t, excl.Equal(dec(t, "200")))
	})
}

func TestViewFormatted(t *testing.T) {
	ctx := context.Background()

	t.Run("formatted amounts render for the default locale", func(t *testing.T) {
		src := newFixtureSource()
		table := src.addPercentTaxTable(t, dec(t, "16"))
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		src.addEntry(inv, dec(t, "100"), dec(t, "2"), &table.ID, false)

		v, err := NewCustomerInvoice(ctx, src, inv)
		require.NoError(t, err)

		formatted, err := v.AmountWithTaxesFormatted(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, formatted, "232")
	})

	t.Run("formatted accessors propagate computation errors", func(t *testing.T) {
		src := newFixtureSource()
		missing := uuid.New()
		inv := src.addInvoice(enum.OwnerTypeCustomer, uuid.New(), false)
		src.addEntry(inv, dec(t, "100"), dec(t, "1"), &missing, false)

		v, err := NewCustomerInvoice(ctx, src, inv)
		require.NoError(t, err)

		_, err = v.AmountWithTaxesFormatted(ctx, "")
		require.Error(t, err)
		assert.True(t, apperror.IsTaxTableNotFound(err))
	})
}
