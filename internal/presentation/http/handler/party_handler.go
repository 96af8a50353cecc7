package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/finbook/bookfile-api/internal/application/service"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/request"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/response"
)

func partyFilterParams(c *gin.Context) *repository.PartyFilterParams {
	return &repository.PartyFilterParams{
		Pagination: paginationParams(c),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	}
}

func partyInput(req *request.PartyRequest) *service.PartyInput {
	return &service.PartyInput{
		Number:       req.Number,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		CurrencyCode: req.CurrencyCode,
		Active:       req.Active,
	}
}

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	jobService      *service.JobService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, jobService *service.JobService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, jobService: jobService}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	result, err := h.customerService.ListCustomers(c.Request.Context(), partyFilterParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles retrieving a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), partyInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, partyInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Jobs handles listing a customer's jobs
func (h *CustomerHandler) Jobs(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	jobs, err := h.jobService.ListJobsByOwner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Jobs retrieved successfully", jobs)
}

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
	jobService    *service.JobService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService, jobService *service.JobService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, jobService: jobService}
}

// List handles listing vendors
func (h *VendorHandler) List(c *gin.Context) {
	result, err := h.vendorService.ListVendors(c.Request.Context(), partyFilterParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Vendors retrieved successfully", result)
}

// Get handles retrieving a single vendor
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Create handles creating a vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), partyInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Vendor created successfully", vendor)
}

// Update handles updating a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), id, partyInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles deleting a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Jobs handles listing a vendor's jobs
func (h *VendorHandler) Jobs(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	jobs, err := h.jobService.ListJobsByOwner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Jobs retrieved successfully", jobs)
}

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles listing employees
func (h *EmployeeHandler) List(c *gin.Context) {
	result, err := h.employeeService.ListEmployees(c.Request.Context(), partyFilterParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Get handles retrieving a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee retrieved successfully", employee)
}

// Create handles creating an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req request.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), partyInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Employee created successfully", employee)
}

// Update handles updating an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, partyInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles deleting an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles listing jobs
func (h *JobHandler) List(c *gin.Context) {
	result, err := h.jobService.ListJobs(c.Request.Context(), partyFilterParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Jobs retrieved successfully", result)
}

// Get handles retrieving a single job
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job retrieved successfully", job)
}

// Create handles creating a job
func (h *JobHandler) Create(c *gin.Context) {
	var req request.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &service.CreateJobInput{
		Number:    req.Number,
		Name:      req.Name,
		OwnerType: req.OwnerType,
		OwnerID:   req.OwnerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Job created successfully", job)
}

// Update handles updating a job
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req request.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), id, req.Number, req.Name, req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job updated successfully", job)
}

// Delete handles deleting a job
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
