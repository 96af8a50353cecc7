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

type taxTableRepository struct {
	db *gorm.DB
}

// NewTaxTableRepository creates a new tax table repository
func NewTaxTableRepository(db *gorm.DB) domainRepo.TaxTableRepository {
	return &taxTableRepository{db: db}
}

func (r *taxTableRepository) Create(ctx context.Context, table *entity.TaxTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *taxTableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxTable, error) {
	var table entity.TaxTable
	err := r.db.WithContext(ctx).Preload("Entries").First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *taxTableRepository) GetByName(ctx context.Context, name string) (*entity.TaxTable, error) {
	var table entity.TaxTable
	err := r.db.WithContext(ctx).Preload("Entries").First(&table, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *taxTableRepository) Update(ctx context.Context, table *entity.TaxTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *taxTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TaxTable{}, "id = ?", id).Error
}

func (r *taxTableRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.TaxTable, int64, error) {
	var tables []entity.TaxTable
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TaxTable{}).Where("invisible = ?", false)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Entries").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&tables).Error

	return tables, total, err
}
