package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error beyond its HTTP status code.
type Kind string

const (
	KindWrongInvoiceType   Kind = "wrong_invoice_type"
	KindTaxTableNotFound   Kind = "tax_table_not_found"
	KindUnknownAccountType Kind = "unknown_account_type"
	KindInvalidTaxRate     Kind = "invalid_tax_rate"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable      = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrTokenExpired       = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewWrongInvoiceTypeError signals that an invoice was projected through a view
// that does not match its owner type. It indicates a caller logic error, never
// a data error, and never wraps another error.
func NewWrongInvoiceTypeError(expected, actual string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindWrongInvoiceType,
		Message: fmt.Sprintf("Wrong invoice type: expected %s owner, invoice is owned by %s", expected, actual),
	}
}

// NewTaxTableNotFoundError signals that an entry references a tax table the
// entity source cannot resolve.
func NewTaxTableNotFoundError(id string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindTaxTableNotFound,
		Message: fmt.Sprintf("Tax table %s not found", id),
	}
}

// NewUnknownAccountTypeError signals that an account cannot be classified for
// balance aggregation. It is propagated unchanged, never translated.
func NewUnknownAccountTypeError(account string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindUnknownAccountType,
		Message: fmt.Sprintf("Unknown account type on account %s", account),
	}
}

// NewInvalidTaxRateError signals a tax rate of -100% or beyond, under which a
// tax-included price cannot be decomposed into net and tax.
func NewInvalidTaxRateError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidTaxRate,
		Message: "Percent rows must sum to more than -100%",
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsWrongInvoiceType reports whether err is a wrong-invoice-type error.
func IsWrongInvoiceType(err error) bool {
	return IsKind(err, KindWrongInvoiceType)
}

// IsTaxTableNotFound reports whether err is a tax-table-not-found error.
func IsTaxTableNotFound(err error) bool {
	return IsKind(err, KindTaxTableNotFound)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
