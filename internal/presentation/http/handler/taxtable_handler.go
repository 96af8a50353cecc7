package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/finbook/bookfile-api/internal/application/service"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/request"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/response"
)

// TaxTableHandler handles tax table HTTP requests
type TaxTableHandler struct {
	taxTableService *service.TaxTableService
}

// NewTaxTableHandler creates a new tax table handler
func NewTaxTableHandler(taxTableService *service.TaxTableService) *TaxTableHandler {
	return &TaxTableHandler{taxTableService: taxTableService}
}

// List handles listing tax tables
func (h *TaxTableHandler) List(c *gin.Context) {
	result, err := h.taxTableService.ListTaxTables(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Tax tables retrieved successfully", result)
}

// Get handles retrieving a single tax table
func (h *TaxTableHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid tax table ID")
		return
	}

	table, err := h.taxTableService.GetTaxTable(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	percent, err := h.taxTableService.EffectivePercent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax table retrieved successfully", gin.H{
		"table":             table,
		"effective_percent": percent,
	})
}

// Create handles creating a tax table
func (h *TaxTableHandler) Create(c *gin.Context) {
	var req request.CreateTaxTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.CreateTaxTableInput{Name: req.Name}
	for _, row := range req.Entries {
		input.Entries = append(input.Entries, service.TaxTableEntryInput{
			AccountID: row.AccountID,
			Amount:    row.Amount,
			Basis:     row.Basis,
		})
	}

	table, err := h.taxTableService.CreateTaxTable(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Tax table created successfully", table)
}

// Delete handles hiding a tax table
func (h *TaxTableHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid tax table ID")
		return
	}

	if err := h.taxTableService.DeleteTaxTable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
