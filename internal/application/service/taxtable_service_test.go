package service

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
	"github.com/finbook/bookfile-api/pkg/pagination"
)

type fakeTaxTableRepo struct {
	tables map[uuid.UUID]*entity.TaxTable
}

func newFakeTaxTableRepo() *fakeTaxTableRepo {
	return &fakeTaxTableRepo{tables: make(map[uuid.UUID]*entity.TaxTable)}
}

func (r *fakeTaxTableRepo) Create(ctx context.Context, table *entity.TaxTable) error {
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}
	r.tables[table.ID] = table
	return nil
}

func (r *fakeTaxTableRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxTable, error) {
	return r.tables[id], nil
}

func (r *fakeTaxTableRepo) GetByName(ctx context.Context, name string) (*entity.TaxTable, error) {
	for _, table := range r.tables {
		if table.Name == name {
			return table, nil
		}
	}
	return nil, nil
}

func (r *fakeTaxTableRepo) Update(ctx context.Context, table *entity.TaxTable) error {
	r.tables[table.ID] = table
	return nil
}

func (r *fakeTaxTableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.tables, id)
	return nil
}

func (r *fakeTaxTableRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.TaxTable, int64, error) {
	return nil, 0, nil
}

func TestCreateTaxTable(t *testing.T) {
	ctx := context.Background()

	newService := func() (*TaxTableService, *fakeAccountRepo) {
		accounts := newFakeAccountRepo()
		return NewTaxTableService(newFakeTaxTableRepo(), accounts), accounts
	}

	percentRow := func(accountID uuid.UUID, amount string) TaxTableEntryInput {
		return TaxTableEntryInput{
			AccountID: accountID,
			Amount:    decimal.RequireFromString(amount),
			Basis:     enum.TaxBasisPercent,
		}
	}

	t.Run("creates a table with its rows", func(t *testing.T) {
		svc, accounts := newService()
		account := accounts.add(nil, enum.AccountTypeLiability)

		table, err := svc.CreateTaxTable(ctx, &CreateTaxTableInput{
			Name:    "VAT 16%",
			Entries: []TaxTableEntryInput{percentRow(account.ID, "16")},
		})
		require.NoError(t, err)
		require.Len(t, table.Entries, 1)
		assert.True(t, table.Entries[0].Amount.Equal(decimal.RequireFromString("16")))
	})

	t.Run("rejects percent rows summing to -100%", func(t *testing.T) {
		svc, accounts := newService()
		account := accounts.add(nil, enum.AccountTypeLiability)

		_, err := svc.CreateTaxTable(ctx, &CreateTaxTableInput{
			Name: "Degenerate",
			Entries: []TaxTableEntryInput{
				percentRow(account.ID, "-60"),
				percentRow(account.ID, "-40"),
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidTaxRate))
	})

	t.Run("accepts a negative rate above -100%", func(t *testing.T) {
		svc, accounts := newService()
		account := accounts.add(nil, enum.AccountTypeLiability)

		_, err := svc.CreateTaxTable(ctx, &CreateTaxTableInput{
			Name:    "Rebate",
			Entries: []TaxTableEntryInput{percentRow(account.ID, "-50")},
		})
		require.NoError(t, err)
	})

	t.Run("value rows do not count toward the rate floor", func(t *testing.T) {
		svc, accounts := newService()
		account := accounts.add(nil, enum.AccountTypeLiability)

		_, err := svc.CreateTaxTable(ctx, &CreateTaxTableInput{
			Name: "Flat deduction",
			Entries: []TaxTableEntryInput{
				percentRow(account.ID, "-50"),
				{
					AccountID: account.ID,
					Amount:    decimal.RequireFromString("-200"),
					Basis:     enum.TaxBasisValue,
				},
			},
		})
		require.NoError(t, err)
	})

	t.Run("rejects an unknown tax account", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.CreateTaxTable(ctx, &CreateTaxTableInput{
			Name:    "Orphan",
			Entries: []TaxTableEntryInput{percentRow(uuid.New(), "16")},
		})
		require.Error(t, err)
	})
}
