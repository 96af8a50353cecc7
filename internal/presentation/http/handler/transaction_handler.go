package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/application/service"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/request"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles ledger transaction HTTP requests
type TransactionHandler struct {
	txnService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txnService: txnService}
}

// List handles listing transactions
func (h *TransactionHandler) List(c *gin.Context) {
	params := &repository.TransactionFilterParams{
		Pagination: paginationParams(c),
		Search:     c.Query("search"),
	}

	if accountIDStr := c.Query("account_id"); accountIDStr != "" {
		if accountID, err := uuid.Parse(accountIDStr); err == nil {
			params.AccountID = &accountID
		}
	}
	if start := c.Query("start_date"); start != "" {
		if t, err := time.Parse(time.DateOnly, start); err == nil {
			params.StartDate = &t
		}
	}
	if end := c.Query("end_date"); end != "" {
		if t, err := time.Parse(time.DateOnly, end); err == nil {
			params.EndDate = &t
		}
	}

	result, err := h.txnService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles retrieving a transaction with its splits
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.txnService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction retrieved successfully", txn)
}

// Create handles creating a balanced transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.CreateTransactionInput{
		Num:          req.Num,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		DatePosted:   req.DatePosted,
	}
	for _, split := range req.Splits {
		input.Splits = append(input.Splits, service.SplitInput{
			AccountID: split.AccountID,
			Memo:      split.Memo,
			Action:    split.Action,
			Value:     split.Value,
			LotID:     split.LotID,
		})
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction created successfully", txn)
}

// RecordPayment handles recording a payment against a posted invoice
func (h *TransactionHandler) RecordPayment(c *gin.Context) {
	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	datePosted := req.DatePosted
	if datePosted.IsZero() {
		datePosted = time.Now()
	}

	txn, err := h.txnService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		InvoiceID:       req.InvoiceID,
		TransferAccount: req.TransferAccount,
		PostingAccount:  req.PostingAccount,
		Amount:          req.Amount,
		DatePosted:      datePosted,
		Num:             req.Num,
		Memo:            req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment recorded successfully", txn)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
