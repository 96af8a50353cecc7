package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
	"github.com/finbook/bookfile-api/pkg/pagination"
)

// PartyInput carries the shared master-data fields for customers, vendors
// and employees.
type PartyInput struct {
	Number       string
	Name         string
	Email        *string
	Phone        *string
	Address      *string
	CurrencyCode string
	Active       *bool
}

// CustomerService handles customer master-data operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *PartyInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Number:       input.Number,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		CurrencyCode: defaultCurrency(input.CurrencyCode),
		Active:       true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *PartyInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPartyInput(input, &customer.Number, &customer.Name, &customer.Email,
		&customer.Phone, &customer.Address, &customer.CurrencyCode, &customer.Active)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers lists customers with pagination and search
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// VendorService handles vendor master-data operations
type VendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input *PartyInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		Number:       input.Number,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		CurrencyCode: defaultCurrency(input.CurrencyCode),
		Active:       true,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// UpdateVendor updates an existing vendor
func (s *VendorService) UpdateVendor(ctx context.Context, id uuid.UUID, input *PartyInput) (*entity.Vendor, error) {
	vendor, err := s.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPartyInput(input, &vendor.Number, &vendor.Name, &vendor.Email,
		&vendor.Phone, &vendor.Address, &vendor.CurrencyCode, &vendor.Active)

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetVendor(ctx, id); err != nil {
		return err
	}
	return s.vendorRepo.Delete(ctx, id)
}

// ListVendors lists vendors with pagination and search
func (s *VendorService) ListVendors(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// EmployeeService handles employee master-data operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *PartyInput) (*entity.Employee, error) {
	employee := &entity.Employee{
		Number:       input.Number,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		CurrencyCode: defaultCurrency(input.CurrencyCode),
		Active:       true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// UpdateEmployee updates an existing employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *PartyInput) (*entity.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPartyInput(input, &employee.Number, &employee.Name, &employee.Email,
		&employee.Phone, &employee.Address, &employee.CurrencyCode, &employee.Active)

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee deletes an employee
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees lists employees with pagination and search
func (s *EmployeeService) ListEmployees(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// JobService handles job master-data operations
type JobService struct {
	jobRepo      repository.JobRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo repository.JobRepository, customerRepo repository.CustomerRepository, vendorRepo repository.VendorRepository) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
	}
}

// CreateJobInput represents the create job input
type CreateJobInput struct {
	Number    string
	Name      string
	OwnerType enum.OwnerType
	OwnerID   uuid.UUID
}

// CreateJob creates a new job owned by a customer or a vendor
func (s *JobService) CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error) {
	switch input.OwnerType {
	case enum.OwnerTypeCustomer:
		customer, err := s.customerRepo.GetByID(ctx, input.OwnerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	case enum.OwnerTypeVendor:
		vendor, err := s.vendorRepo.GetByID(ctx, input.OwnerID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, apperror.NewNotFoundError("Vendor")
		}
	default:
		return nil, apperror.NewBadRequestError("Job owner must be a customer or a vendor")
	}

	job := &entity.Job{
		Number:    input.Number,
		Name:      input.Name,
		OwnerType: input.OwnerType,
		OwnerID:   input.OwnerID,
		Active:    true,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	return job, nil
}

// UpdateJob updates a job's name, number and active flag. Ownership is fixed
// at creation.
func (s *JobService) UpdateJob(ctx context.Context, id uuid.UUID, number, name string, active *bool) (*entity.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if number != "" {
		job.Number = number
	}
	if name != "" {
		job.Name = name
	}
	if active != nil {
		job.Active = *active
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob deletes a job
func (s *JobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetJob(ctx, id); err != nil {
		return err
	}
	return s.jobRepo.Delete(ctx, id)
}

// ListJobs lists jobs with pagination and search
func (s *JobService) ListJobs(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Job], error) {
	jobs, total, err := s.jobRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(jobs, pag), nil
}

// ListJobsByOwner lists the jobs belonging to one customer or vendor
func (s *JobService) ListJobsByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Job, error) {
	return s.jobRepo.GetByOwner(ctx, ownerID)
}

func defaultCurrency(code string) string {
	if code == "" {
		return "USD"
	}
	return code
}

func applyPartyInput(input *PartyInput, number, name *string, email, phone, address **string, currency *string, active *bool) {
	if input.Number != "" {
		*number = input.Number
	}
	if input.Name != "" {
		*name = input.Name
	}
	if input.Email != nil {
		*email = input.Email
	}
	if input.Phone != nil {
		*phone = input.Phone
	}
	if input.Address != nil {
		*address = input.Address
	}
	if input.CurrencyCode != "" {
		*currency = input.CurrencyCode
	}
	if input.Active != nil {
		*active = *input.Active
	}
}
