package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	domainRepo "github.com/finbook/bookfile-api/internal/domain/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) GetWithSplits(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).Preload("Splits").First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Split{}, "transaction_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Transaction{}, "id = ?", id).Error
	})
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var txns []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if params.Search != "" {
		query = query.Where("description ILIKE ? OR num ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.AccountID != nil {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&entity.Split{}).Select("transaction_id").Where("account_id = ?", *params.AccountID),
		)
	}
	if params.StartDate != nil {
		query = query.Where("date_posted >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date_posted <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Splits").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date_posted DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *transactionRepository) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.db.WithContext(ctx).Order("date_posted ASC").Find(&txns).Error
	return txns, err
}

type splitRepository struct {
	db *gorm.DB
}

// NewSplitRepository creates a new split repository
func NewSplitRepository(db *gorm.DB) domainRepo.SplitRepository {
	return &splitRepository{db: db}
}

func (r *splitRepository) CreateBatch(ctx context.Context, splits []entity.Split) error {
	if len(splits) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&splits).Error
}

func (r *splitRepository) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]entity.Split, error) {
	var splits []entity.Split
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&splits).Error
	return splits, err
}

func (r *splitRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Split, error) {
	var splits []entity.Split
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&splits).Error
	return splits, err
}
