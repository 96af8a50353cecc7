package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// TaxTableRepository defines the interface for tax table data operations
type TaxTableRepository interface {
	Create(ctx context.Context, table *entity.TaxTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxTable, error)
	GetByName(ctx context.Context, name string) (*entity.TaxTable, error)
	Update(ctx context.Context, table *entity.TaxTable) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.TaxTable, int64, error)
}
