package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	domainRepo "github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domainRepo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Account{}, "id = ?", id).Error
}

func (r *accountRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Account, int64, error) {
	var accounts []entity.Account
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Account{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("code ASC, name ASC").
		Find(&accounts).Error

	return accounts, total, err
}

func (r *accountRepository) GetChildren(ctx context.Context, parentID uuid.UUID) ([]entity.Account, error) {
	var accounts []entity.Account
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("code ASC, name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) GetRoots(ctx context.Context) ([]entity.Account, error) {
	var accounts []entity.Account
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("code ASC, name ASC").
		Find(&accounts).Error
	return accounts, err
}
