package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/billing"
	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// TaxTableService handles tax table operations
type TaxTableService struct {
	taxTableRepo repository.TaxTableRepository
	accountRepo  repository.AccountRepository
}

// NewTaxTableService creates a new tax table service
func NewTaxTableService(taxTableRepo repository.TaxTableRepository, accountRepo repository.AccountRepository) *TaxTableService {
	return &TaxTableService{
		taxTableRepo: taxTableRepo,
		accountRepo:  accountRepo,
	}
}

// TaxTableEntryInput represents one row of a tax table
type TaxTableEntryInput struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Basis     enum.TaxBasis
}

// CreateTaxTableInput represents the create tax table input
type CreateTaxTableInput struct {
	Name    string
	Entries []TaxTableEntryInput
}

// CreateTaxTable creates a tax table with its rows
func (s *TaxTableService) CreateTaxTable(ctx context.Context, input *CreateTaxTableInput) (*entity.TaxTable, error) {
	existing, err := s.taxTableRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Tax table name already in use")
	}

	table := &entity.TaxTable{
		Name: input.Name,
	}
	percentSum := decimal.Zero
	for _, row := range input.Entries {
		account, err := s.accountRepo.GetByID(ctx, row.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Tax account")
		}
		if row.Basis == enum.TaxBasisPercent {
			percentSum = percentSum.Add(row.Amount)
		}

		table.Entries = append(table.Entries, entity.TaxTableEntry{
			AccountID: row.AccountID,
			Amount:    row.Amount,
			Basis:     row.Basis,
		})
	}
	// A summed rate of -100% or beyond would zero out the tax-included
	// divisor downstream.
	if percentSum.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return nil, apperror.NewInvalidTaxRateError()
	}

	if err := s.taxTableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// GetTaxTable retrieves a tax table with its rows
func (s *TaxTableService) GetTaxTable(ctx context.Context, id uuid.UUID) (*entity.TaxTable, error) {
	table, err := s.taxTableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewTaxTableNotFoundError(id.String())
	}
	return table, nil
}

// DeleteTaxTable hides a tax table from listings rather than removing it, so
// invoices that already reference it keep resolving.
func (s *TaxTableService) DeleteTaxTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.GetTaxTable(ctx, id)
	if err != nil {
		return err
	}

	table.Invisible = true
	return s.taxTableRepo.Update(ctx, table)
}

// ListTaxTables lists visible tax tables
func (s *TaxTableService) ListTaxTables(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.TaxTable], error) {
	tables, total, err := s.taxTableRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tables, pag), nil
}

// EffectivePercent returns the combined fractional rate of the table's
// percent rows.
func (s *TaxTableService) EffectivePercent(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	table, err := s.GetTaxTable(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return billing.TablePercent(table), nil
}
