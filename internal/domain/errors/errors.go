package errors

import (
	"net/http"

	"twashell/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Dispatch gateway errors
	ErrMissingContent = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"제목과 메시지는 필수입니다.",
		"",
	)

	ErrMissingTarget = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"토큰 또는 토큰 배열이 필요합니다.",
		"",
	)

	ErrProviderNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_NOT_CONFIGURED",
		"Firebase Admin SDK not initialized",
		"",
	)

	ErrDispatchFailed = NewBaseError(
		http.StatusInternalServerError,
		"DISPATCH_FAILED",
		"알림 발송에 실패했습니다.",
		"",
	)

	// Token acquisition errors
	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"등록된 토큰이 없습니다.",
		"",
	)
)
