package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook/bookfile-api/internal/application/service"
	"github.com/finbook/bookfile-api/internal/domain/billing"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/request"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice HTTP requests, both the generic document and
// its typed projections.
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	defaultLocale  string
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, defaultLocale string) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		defaultLocale:  defaultLocale,
	}
}

func (h *InvoiceHandler) locale(c *gin.Context) string {
	if locale := c.Query("locale"); locale != "" {
		return locale
	}
	return h.defaultLocale
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Pagination: paginationParams(c),
		Search:     c.Query("search"),
	}

	if ownerTypeStr := c.Query("owner_type"); ownerTypeStr != "" {
		ownerType := enum.OwnerType(-1)
		if err := ownerType.UnmarshalJSON([]byte(`"` + ownerTypeStr + `"`)); err == nil && ownerType.Valid() {
			params.OwnerType = &ownerType
		}
	}
	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		if ownerID, err := uuid.Parse(ownerIDStr); err == nil {
			params.OwnerID = &ownerID
		}
	}
	if postedStr := c.Query("posted"); postedStr != "" {
		posted := postedStr == "true"
		params.Posted = &posted
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles retrieving a generic invoice with its entries
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Create handles creating an unposted invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		OwnerType:    req.OwnerType,
		OwnerID:      req.OwnerID,
		Number:       req.Number,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		DateOpened:   req.DateOpened,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoice created successfully", invoice)
}

// Delete handles deleting an unposted invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddEntry handles appending a line to an unposted invoice
func (h *InvoiceHandler) AddEntry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	entry, err := h.invoiceService.AddEntry(c.Request.Context(), id, &service.AddEntryInput{
		Description: req.Description,
		Action:      req.Action,
		Price:       req.Price,
		Quantity:    req.Quantity,
		TaxTableID:  req.TaxTableID,
		TaxIncluded: req.TaxIncluded,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoice entry added successfully", entry)
}

// RemoveEntry handles removing a line from an unposted invoice
func (h *InvoiceHandler) RemoveEntry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}
	entryID, ok := parseID(c, "entryId")
	if !ok {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.invoiceService.RemoveEntry(c.Request.Context(), id, entryID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Post handles posting an invoice to the ledger
func (h *InvoiceHandler) Post(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	// The body is optional; posting without dates defaults both to now.
	var req request.PostInvoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request payload")
			return
		}
	}

	invoice, err := h.invoiceService.PostInvoice(c.Request.Context(), id, &service.PostInvoiceInput{
		DatePosted: req.DatePosted,
		DateDue:    req.DateDue,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice posted successfully", invoice)
}

// Sums handles computing the invoice totals
func (h *InvoiceHandler) Sums(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	sums, err := h.invoiceService.Sums(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice sums computed successfully", sums)
}

// Settlement handles computing the invoice's payment state
func (h *InvoiceHandler) Settlement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	settlement, err := h.invoiceService.Settlement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settlement computed successfully", settlement)
}

// PayingTransactions handles listing the transactions settling the invoice
func (h *InvoiceHandler) PayingTransactions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	txns, err := h.invoiceService.PayingTransactions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Paying transactions retrieved successfully", txns)
}

// invoiceProjection is the method set shared by the four typed views.
type invoiceProjection interface {
	ID() uuid.UUID
	Number() string
	Description() string
	Currency() string
	DateOpened() time.Time
	DatePosted() *time.Time
	DateDue() *time.Time
	IsPosted() bool
	Entries(ctx context.Context) ([]billing.Entry, error)
	Settlement(ctx context.Context) (*billing.Settlement, error)
	AmountWithTaxesFormatted(ctx context.Context, locale string) (string, error)
	AmountWithoutTaxesFormatted(ctx context.Context, locale string) (string, error)
	AmountUnpaidWithTaxesFormatted(ctx context.Context, locale string) (string, error)
}

type entryView struct {
	ID           uuid.UUID       `json:"id"`
	Description  string          `json:"description"`
	Action       string          `json:"action"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	TaxIncluded  bool            `json:"tax_included"`
	TaxPercent   decimal.Decimal `json:"tax_percent"`
	SumExclTax   decimal.Decimal `json:"sum_excl_tax"`
	SumInclTax   decimal.Decimal `json:"sum_incl_tax"`
	SumFormatted string          `json:"sum_formatted"`
}

func (h *InvoiceHandler) projectionBody(c *gin.Context, p invoiceProjection, extra gin.H) (gin.H, error) {
	ctx := c.Request.Context()
	locale := h.locale(c)

	settlement, err := p.Settlement(ctx)
	if err != nil {
		return nil, err
	}

	total, err := p.AmountWithTaxesFormatted(ctx, locale)
	if err != nil {
		return nil, err
	}
	totalExcl, err := p.AmountWithoutTaxesFormatted(ctx, locale)
	if err != nil {
		return nil, err
	}
	unpaid, err := p.AmountUnpaidWithTaxesFormatted(ctx, locale)
	if err != nil {
		return nil, err
	}

	entries, err := p.Entries(ctx)
	if err != nil {
		return nil, err
	}

	entryViews := make([]entryView, 0, len(entries))
	for i := range entries {
		e := &entries[i]

		pct, err := e.ApplicableTaxPercent(ctx)
		if err != nil {
			return nil, err
		}
		sums, err := e.Sums(ctx)
		if err != nil {
			return nil, err
		}
		sumFormatted, err := e.SumFormatted(ctx, locale)
		if err != nil {
			return nil, err
		}

		entryViews = append(entryViews, entryView{
			ID:           e.ID(),
			Description:  e.Description(),
			Action:       e.Action(),
			Price:        e.Price(),
			Quantity:     e.Quantity(),
			TaxIncluded:  e.TaxIncluded(),
			TaxPercent:   pct,
			SumExclTax:   sums.ExclTax,
			SumInclTax:   sums.InclTax,
			SumFormatted: sumFormatted,
		})
	}

	body := gin.H{
		"id":          p.ID(),
		"number":      p.Number(),
		"description": p.Description(),
		"currency":    p.Currency(),
		"date_opened": p.DateOpened(),
		"date_posted": p.DatePosted(),
		"date_due":    p.DateDue(),
		"posted":      p.IsPosted(),
		"settlement":  settlement,
		"entries":     entryViews,
		"formatted": gin.H{
			"total":        total,
			"total_excl":   totalExcl,
			"unpaid_total": unpaid,
		},
	}
	for k, v := range extra {
		body[k] = v
	}
	return body, nil
}

// CustomerInvoice handles the customer invoice projection
func (h *InvoiceHandler) CustomerInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	v, err := h.invoiceService.CustomerInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.projectionBody(c, v, gin.H{"customer_id": v.CustomerID()})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer invoice retrieved successfully", body)
}

// VendorBill handles the vendor bill projection
func (h *InvoiceHandler) VendorBill(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	v, err := h.invoiceService.VendorBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.projectionBody(c, v, gin.H{"vendor_id": v.VendorID()})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor bill retrieved successfully", body)
}

// EmployeeVoucher handles the employee expense voucher projection
func (h *InvoiceHandler) EmployeeVoucher(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	v, err := h.invoiceService.EmployeeVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.projectionBody(c, v, gin.H{"employee_id": v.EmployeeID()})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee voucher retrieved successfully", body)
}

// JobInvoice handles the job invoice projection
func (h *InvoiceHandler) JobInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	v, err := h.invoiceService.JobInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.projectionBody(c, v, gin.H{
		"job_id":              v.JobID(),
		"ultimate_owner_type": v.UltimateOwnerType(),
		"ultimate_owner_id":   v.UltimateOwnerID(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job invoice retrieved successfully", body)
}
