package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// AccountService handles chart-of-accounts operations
type AccountService struct {
	accountRepo repository.AccountRepository
	splitRepo   repository.SplitRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository, splitRepo repository.SplitRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		splitRepo:   splitRepo,
	}
}

// CreateAccountInput represents the create account input
type CreateAccountInput struct {
	ParentID     *uuid.UUID
	Name         string
	Code         string
	Description  string
	Type         enum.AccountType
	CurrencyCode string
}

// CreateAccount creates a new account in the chart
func (s *AccountService) CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewUnknownAccountTypeError(input.Name)
	}

	if input.ParentID != nil {
		parent, err := s.accountRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewNotFoundError("Parent account")
		}
	}

	account := &entity.Account{
		ParentID:     input.ParentID,
		Name:         input.Name,
		Code:         input.Code,
		Description:  input.Description,
		Type:         input.Type,
		CurrencyCode: defaultCurrency(input.CurrencyCode),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	return account, nil
}

// UpdateAccount updates an account's descriptive fields
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, name, code, description string) (*entity.Account, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		account.Name = name
	}
	if code != "" {
		account.Code = code
	}
	if description != "" {
		account.Description = description
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount deletes an account that has no children
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAccount(ctx, id); err != nil {
		return err
	}

	children, err := s.accountRepo.GetChildren(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return apperror.NewConflictError("Account has child accounts")
	}

	return s.accountRepo.Delete(ctx, id)
}

// ListAccounts lists accounts with pagination
func (s *AccountService) ListAccounts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Account], error) {
	accounts, total, err := s.accountRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(accounts, pag), nil
}

// AccountBalance holds an account's own and aggregated balances.
type AccountBalance struct {
	AccountID    uuid.UUID       `json:"account_id"`
	Own          decimal.Decimal `json:"own"`
	WithChildren decimal.Decimal `json:"with_children"`
}

// Balance computes the account's own balance and the balance including every
// descendant. An account whose type cannot be classified aborts the whole
// aggregation; the error is propagated unchanged.
func (s *AccountService) Balance(ctx context.Context, id uuid.UUID) (*AccountBalance, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	own, err := s.ownBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	withChildren, err := s.recursiveBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	return &AccountBalance{
		AccountID:    account.ID,
		Own:          own,
		WithChildren: withChildren,
	}, nil
}

func (s *AccountService) ownBalance(ctx context.Context, account *entity.Account) (decimal.Decimal, error) {
	if !account.Type.Valid() {
		return decimal.Zero, apperror.NewUnknownAccountTypeError(account.Name)
	}

	splits, err := s.splitRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, split := range splits {
		sum = sum.Add(split.Value)
	}
	return sum, nil
}

func (s *AccountService) recursiveBalance(ctx context.Context, account *entity.Account) (decimal.Decimal, error) {
	sum, err := s.ownBalance(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}

	children, err := s.accountRepo.GetChildren(ctx, account.ID)
	if err != nil {
		return decimal.Zero, err
	}

	for i := range children {
		child, err := s.recursiveBalance(ctx, &children[i])
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(child)
	}
	return sum, nil
}
