package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// PartyFilterParams contains filtering parameters for master-data queries
type PartyFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Customer, int64, error)
}

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Vendor, int64, error)
}

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Employee, int64, error)
}

// JobRepository defines the interface for job data operations
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Job, int64, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Job, error)
}
