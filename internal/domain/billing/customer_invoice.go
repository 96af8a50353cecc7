package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
)

// CustomerInvoice is the customer-facing projection of a generic invoice.
type CustomerInvoice struct {
	view
	customerID uuid.UUID
}

// NewCustomerInvoice projects a generic invoice as a customer invoice. It
// succeeds iff the owner is a customer or a job ultimately owned by a
// customer; anything else is a wrong-invoice-type error, raised before any
// arithmetic is attempted.
func NewCustomerInvoice(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (*CustomerInvoice, error) {
	customerID, err := resolveOwner(ctx, src, inv, enum.OwnerTypeCustomer)
	if err != nil {
		return nil, err
	}
	return &CustomerInvoice{
		view:       view{inv: inv, src: src},
		customerID: customerID,
	}, nil
}

// CustomerID returns the invoiced customer, resolved through the job when
// the invoice is job-owned.
func (v *CustomerInvoice) CustomerID() uuid.UUID {
	return v.customerID
}

// CustomerInvoiceEntry is a line item viewed as part of a customer invoice.
type CustomerInvoiceEntry struct {
	Entry
}

// InvoiceEntries returns the document's line items as customer invoice
// entries.
func (v *CustomerInvoice) InvoiceEntries(ctx context.Context) ([]CustomerInvoiceEntry, error) {
	entries, err := v.Entries(ctx)
	if err != nil {
		return nil, err
	}
	typed := make([]CustomerInvoiceEntry, len(entries))
	for i := range entries {
		typed[i] = CustomerInvoiceEntry{entries[i]}
	}
	return typed, nil
}
