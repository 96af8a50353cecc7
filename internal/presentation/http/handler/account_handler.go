package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/finbook/bookfile-api/internal/application/service"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/request"
	"github.com/finbook/bookfile-api/internal/presentation/http/dto/response"
)

// AccountHandler handles chart-of-accounts HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List handles listing accounts
func (h *AccountHandler) List(c *gin.Context) {
	result, err := h.accountService.ListAccounts(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Accounts retrieved successfully", result)
}

// Get handles retrieving a single account
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Account retrieved successfully", account)
}

// Create handles creating an account
func (h *AccountHandler) Create(c *gin.Context) {
	var req request.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), &service.CreateAccountInput{
		ParentID:     req.ParentID,
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		Type:         req.Type,
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Account created successfully", account)
}

// Update handles updating an account
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	var req request.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), id, req.Name, req.Code, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Account updated successfully", account)
}

// Delete handles deleting an account
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Balance handles computing an account's balance including descendants
func (h *AccountHandler) Balance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	balance, err := h.accountService.Balance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Balance computed successfully", balance)
}
