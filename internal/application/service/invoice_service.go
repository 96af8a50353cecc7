package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/billing"
	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// InvoiceService handles generic invoices and their typed projections
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	entryRepo    repository.InvoiceEntryRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	employeeRepo repository.EmployeeRepository
	jobRepo      repository.JobRepository
	source       repository.EntitySource
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	entryRepo repository.InvoiceEntryRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	employeeRepo repository.EmployeeRepository,
	jobRepo repository.JobRepository,
	source repository.EntitySource,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		employeeRepo: employeeRepo,
		jobRepo:      jobRepo,
		source:       source,
	}
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	OwnerType    enum.OwnerType
	OwnerID      uuid.UUID
	Number       string
	Description  string
	CurrencyCode string
	DateOpened   time.Time
}

// CreateInvoice creates an unposted invoice for the given owner. The owner
// type and ID are fixed for the invoice's lifetime.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if err := s.checkOwner(ctx, input.OwnerType, input.OwnerID); err != nil {
		return nil, err
	}

	if input.Number != "" {
		existing, err := s.invoiceRepo.GetByNumber(ctx, input.Number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Invoice number already in use")
		}
	}

	dateOpened := input.DateOpened
	if dateOpened.IsZero() {
		dateOpened = time.Now()
	}

	invoice := &entity.Invoice{
		OwnerType:    input.OwnerType,
		OwnerID:      input.OwnerID,
		Number:       input.Number,
		Description:  input.Description,
		CurrencyCode: defaultCurrency(input.CurrencyCode),
		DateOpened:   dateOpened,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) checkOwner(ctx context.Context, ownerType enum.OwnerType, ownerID uuid.UUID) error {
	switch ownerType {
	case enum.OwnerTypeCustomer:
		customer, err := s.customerRepo.GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.NewNotFoundError("Customer")
		}
	case enum.OwnerTypeVendor:
		vendor, err := s.vendorRepo.GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if vendor == nil {
			return apperror.NewNotFoundError("Vendor")
		}
	case enum.OwnerTypeEmployee:
		employee, err := s.employeeRepo.GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if employee == nil {
			return apperror.NewNotFoundError("Employee")
		}
	case enum.OwnerTypeJob:
		job, err := s.jobRepo.GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if job == nil {
			return apperror.NewNotFoundError("Job")
		}
	default:
		return apperror.NewBadRequestError("Unknown owner type")
	}
	return nil
}

// GetInvoice retrieves a generic invoice with its entries
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// DeleteInvoice removes an unposted invoice and its entries
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	if invoice.IsPosted() {
		return apperror.NewConflictError("Cannot delete a posted invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// ListInvoices lists invoices with filters and pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// AddEntryInput represents a new invoice line
type AddEntryInput struct {
	Description string
	Action      string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	TaxTableID  *uuid.UUID
	TaxIncluded bool
}

// AddEntry appends a line to an unposted invoice
func (s *InvoiceService) AddEntry(ctx context.Context, invoiceID uuid.UUID, input *AddEntryInput) (*entity.InvoiceEntry, error) {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.IsPosted() {
		return nil, apperror.NewConflictError("Cannot modify a posted invoice")
	}
	if input.Quantity.IsNegative() {
		return nil, apperror.NewBadRequestError("Quantity must be non-negative")
	}

	if input.TaxTableID != nil {
		table, err := s.source.TaxTableByID(ctx, *input.TaxTableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewTaxTableNotFoundError(input.TaxTableID.String())
		}
	}

	entry := &entity.InvoiceEntry{
		InvoiceID:   invoice.ID,
		Seq:         len(invoice.Entries),
		Description: input.Description,
		Action:      input.Action,
		Price:       input.Price,
		Quantity:    input.Quantity,
		TaxTableID:  input.TaxTableID,
		TaxIncluded: input.TaxIncluded,
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveEntry deletes a line from an unposted invoice
func (s *InvoiceService) RemoveEntry(ctx context.Context, invoiceID, entryID uuid.UUID) error {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.IsPosted() {
		return apperror.NewConflictError("Cannot modify a posted invoice")
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil || entry.InvoiceID != invoice.ID {
		return apperror.NewNotFoundError("Invoice entry")
	}

	return s.entryRepo.Delete(ctx, entryID)
}

// PostInvoiceInput represents the post operation input
type PostInvoiceInput struct {
	DatePosted time.Time
	DateDue    time.Time
}

// PostInvoice posts an invoice: it gets a fresh lot so subsequent payments
// can be correlated with it. A posted invoice is frozen.
func (s *InvoiceService) PostInvoice(ctx context.Context, id uuid.UUID, input *PostInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.IsPosted() {
		return nil, apperror.NewConflictError("Invoice is already posted")
	}

	// The totals must be computable before the document freezes; a broken
	// tax reference surfaces here instead of at payment time.
	if _, err := billing.SumInvoice(ctx, s.source, invoice); err != nil {
		return nil, err
	}

	lotID := uuid.New()
	datePosted := input.DatePosted
	if datePosted.IsZero() {
		datePosted = time.Now()
	}
	dateDue := input.DateDue
	if dateDue.IsZero() {
		dateDue = datePosted
	}

	invoice.LotID = &lotID
	invoice.DatePosted = &datePosted
	invoice.DateDue = &dateDue

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Sums computes the invoice's tax-exclusive, tax-inclusive and tax totals
func (s *InvoiceService) Sums(ctx context.Context, id uuid.UUID) (billing.InvoiceSums, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return billing.InvoiceSums{}, err
	}
	return billing.SumInvoice(ctx, s.source, invoice)
}

// Settlement computes the invoice's payment state from the ledger
func (s *InvoiceService) Settlement(ctx context.Context, id uuid.UUID) (*billing.Settlement, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return billing.Settle(ctx, s.source, invoice)
}

// PayingTransactions lists the ledger transactions that settle the invoice
func (s *InvoiceService) PayingTransactions(ctx context.Context, id uuid.UUID) ([]entity.Transaction, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return billing.PayingTransactions(ctx, s.source, invoice)
}

// CustomerInvoice projects the invoice as a customer invoice
func (s *InvoiceService) CustomerInvoice(ctx context.Context, id uuid.UUID) (*billing.CustomerInvoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return billing.NewCustomerInvoice(ctx, s.source, invoice)
}

// VendorBill projects the invoice as a vendor bill
func (s *InvoiceService) VendorBill(ctx context.Context, id uuid.UUID) (*billing.VendorBill, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return billing.NewVendorBill(ctx, s.source, invoice)
}

// EmployeeVoucher projects the invoice as an employee expense voucher
func (s *InvoiceService) EmployeeVoucher(ctx context.Context, id uuid.UUID) (*billing.EmployeeVoucher, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return billing.NewEmployeeVoucher(ctx, s.source, invoice)
}

// JobInvoice projects the invoice as a job invoice
func (s *InvoiceService) JobInvoice(ctx context.Context, id uuid.UUID) (*billing.JobInvoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return billing.NewJobInvoice(ctx, s.source, invoice)
}
