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

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) add(parentID *uuid.UUID, accountType enum.AccountType) *entity.Account {
	account := &entity.Account{
		ID:       uuid.New(),
		ParentID: parentID,
		Name:     "Account " + uuid.NewString()[:8],
		Type:     accountType,
	}
	r.accounts[account.ID] = account
	return account
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Account, int64, error) {
	return nil, 0, nil
}

func (r *fakeAccountRepo) GetChildren(ctx context.Context, parentID uuid.UUID) ([]entity.Account, error) {
	var children []entity.Account
	for _, account := range r.accounts {
		if account.ParentID != nil && *account.ParentID == parentID {
			children = append(children, *account)
		}
	}
	return children, nil
}

func (r *fakeAccountRepo) GetRoots(ctx context.Context) ([]entity.Account, error) {
	var roots []entity.Account
	for _, account := range r.accounts {
		if account.ParentID == nil {
			roots = append(roots, *account)
		}
	}
	return roots, nil
}

type fakeSplitRepo struct {
	byAccount map[uuid.UUID][]entity.Split
}

func newFakeSplitRepo() *fakeSplitRepo {
	return &fakeSplitRepo{byAccount: make(map[uuid.UUID][]entity.Split)}
}

func (r *fakeSplitRepo) add(accountID uuid.UUID, value string) {
	r.byAccount[accountID] = append(r.byAccount[accountID], entity.Split{
		ID:        uuid.New(),
		AccountID: accountID,
		Value:     decimal.RequireFromString(value),
	})
}

func (r *fakeSplitRepo) CreateBatch(ctx context.Context, splits []entity.Split) error {
	for _, split := range splits {
		r.byAccount[split.AccountID] = append(r.byAccount[split.AccountID], split)
	}
	return nil
}

func (r *fakeSplitRepo) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]entity.Split, error) {
	return nil, nil
}

func (r *fakeSplitRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Split, error) {
	return r.byAccount[accountID], nil
}

func TestAccountBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates splits across descendants", func(t *testing.T) {
		accounts := newFakeAccountRepo()
		splits := newFakeSplitRepo()
		svc := NewAccountService(accounts, splits)

		root := accounts.add(nil, enum.AccountTypeAsset)
		child := accounts.add(&root.ID, enum.AccountTypeBank)
		grandchild := accounts.add(&child.ID, enum.AccountTypeCash)

		splits.add(root.ID, "100")
		splits.add(child.ID, "50")
		splits.add(grandchild.ID, "-30")

		balance, err := svc.Balance(ctx, root.ID)
		require.NoError(t, err)
		assert.True(t, balance.Own.Equal(decimal.RequireFromString("100")))
		assert.True(t, balance.WithChildren.Equal(decimal.RequireFromString("120")))
	})

	t.Run("leaf balance equals its own splits", func(t *testing.T) {
		accounts := newFakeAccountRepo()
		splits := newFakeSplitRepo()
		svc := NewAccountService(accounts, splits)

		leaf := accounts.add(nil, enum.AccountTypeIncome)
		splits.add(leaf.ID, "75")

		balance, err := svc.Balance(ctx, leaf.ID)
		require.NoError(t, err)
		assert.True(t, balance.Own.Equal(balance.WithChildren))
	})

	t.Run("an unclassifiable descendant aborts the aggregation", func(t *testing.T) {
		accounts := newFakeAccountRepo()
		splits := newFakeSplitRepo()
		svc := NewAccountService(accounts, splits)

		root := accounts.add(nil, enum.AccountTypeAsset)
		accounts.add(&root.ID, enum.AccountType(-1))
		splits.add(root.ID, "100")

		_, err := svc.Balance(ctx, root.ID)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindUnknownAccountType))
	})
}
