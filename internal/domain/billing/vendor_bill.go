package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
)

// VendorBill is the vendor-facing projection of a generic invoice.
type VendorBill struct {
	view
	vendorID uuid.UUID
}

// NewVendorBill projects a generic invoice as a vendor bill. The owner must
// be a vendor or a job ultimately owned by a vendor.
func NewVendorBill(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (*VendorBill, error) {
	vendorID, err := resolveOwner(ctx, src, inv, enum.OwnerTypeVendor)
	if err != nil {
		return nil, err
	}
	return &VendorBill{
		view:     view{inv: inv, src: src},
		vendorID: vendorID,
	}, nil
}

// VendorID returns the billing vendor, resolved through the job when the
// bill is job-owned.
func (v *VendorBill) VendorID() uuid.UUID {
	return v.vendorID
}

// BillEntry is a line item viewed as part of a vendor bill.
type BillEntry struct {
	Entry
}

// BillEntries returns the document's line items as bill entries.
func (v *VendorBill) BillEntries(ctx context.Context) ([]BillEntry, error) {
	entries, err := v.Entries(ctx)
	if err != nil {
		return nil, err
	}
	typed := make([]BillEntry, len(entries))
	for i := range entries {
		typed[i] = BillEntry{entries[i]}
	}
	return typed, nil
}
