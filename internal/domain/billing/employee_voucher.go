package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
)

// EmployeeVoucher is the expense-voucher projection of a generic invoice.
type EmployeeVoucher struct {
	view
	employeeID uuid.UUID
}

// NewEmployeeVoucher projects a generic invoice as an employee expense
// voucher. The owner must be an employee; jobs never route to employees.
func NewEmployeeVoucher(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (*EmployeeVoucher, error) {
	employeeID, err := resolveOwner(ctx, src, inv, enum.OwnerTypeEmployee)
	if err != nil {
		return nil, err
	}
	return &EmployeeVoucher{
		view:       view{inv: inv, src: src},
		employeeID: employeeID,
	}, nil
}

// EmployeeID returns the employee the voucher reimburses.
func (v *EmployeeVoucher) EmployeeID() uuid.UUID {
	return v.employeeID
}

// VoucherEntry is a line item viewed as part of an expense voucher.
type VoucherEntry struct {
	Entry
}

// VoucherEntries returns the document's line items as voucher entries.
func (v *EmployeeVoucher) VoucherEntries(ctx context.Context) ([]VoucherEntry, error) {
	entries, err := v.Entries(ctx)
	if err != nil {
		return nil, err
	}
	typed := make([]VoucherEntry, len(entries))
	for i := range entries {
		typed[i] = VoucherEntry{entries[i]}
	}
	return typed, nil
}
