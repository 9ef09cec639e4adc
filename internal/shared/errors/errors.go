// Package errors provides the application error type shared by every layer.
// Each ErrorType maps to one HTTP status; the HTTP boundary renders an
// AppError as the JSON error envelope.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeUnauthorized        ErrorType = "unauthorized"
	ErrorTypeForbidden           ErrorType = "forbidden"
	ErrorTypeInternal            ErrorType = "internal_error"
	ErrorTypeMalformedIdentifier ErrorType = "malformed_identifier"
	ErrorTypeInsufficientPool    ErrorType = "insufficient_pool"
	ErrorTypeInvalidState        ErrorType = "invalid_state"
	ErrorTypeRateLimited         ErrorType = "rate_limited"
	ErrorTypeProjection          ErrorType = "projection_error"
	ErrorTypeInvalidPayload      ErrorType = "invalid_payload"
	ErrorTypeRegistry            ErrorType = "registry_error"
	ErrorTypeStore               ErrorType = "store_error"
)

var statusCodes = map[ErrorType]int{
	ErrorTypeValidation:          http.StatusBadRequest,
	ErrorTypeNotFound:            http.StatusNotFound,
	ErrorTypeConflict:            http.StatusConflict,
	ErrorTypeUnauthorized:        http.StatusUnauthorized,
	ErrorTypeForbidden:           http.StatusForbidden,
	ErrorTypeInternal:            http.StatusInternalServerError,
	ErrorTypeMalformedIdentifier: http.StatusBadRequest,
	ErrorTypeInsufficientPool:    http.StatusConflict,
	ErrorTypeInvalidState:        http.StatusUnprocessableEntity,
	ErrorTypeRateLimited:         http.StatusTooManyRequests,
	ErrorTypeProjection:          http.StatusBadGateway,
	ErrorTypeInvalidPayload:      http.StatusBadGateway,
	ErrorTypeRegistry:            http.StatusBadGateway,
	ErrorTypeStore:               http.StatusInternalServerError,
}

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`

	cause error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func newAppError(t ErrorType, message string, details []string) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    statusCodes[t],
		Details: strings.Join(details, "; "),
	}
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, message, details)
}

// NewMalformedIdentifierError reports an identifier that does not reduce to 14 digits.
func NewMalformedIdentifierError(raw string) *AppError {
	return newAppError(ErrorTypeMalformedIdentifier, "identifier must contain exactly 14 digits", []string{raw})
}

// NewInsufficientPoolError reports a distribution that asks for more records than are available.
func NewInsufficientPoolError(requested, available int) *AppError {
	return newAppError(ErrorTypeInsufficientPool,
		fmt.Sprintf("requested %d records but only %d are available", requested, available), nil)
}

func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, message, details)
}

func NewRateLimitedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRateLimited, message, details)
}

func NewProjectionError(message string, cause error) *AppError {
	e := newAppError(ErrorTypeProjection, message, nil)
	e.cause = cause
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func NewInvalidPayloadError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidPayload, message, details)
}

func NewRegistryError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRegistry, message, details)
}

// NewStoreError wraps a persistence failure. The cause stays reachable through
// errors.Is/As but is not rendered to API clients.
func NewStoreError(message string, cause error) *AppError {
	e := newAppError(ErrorTypeStore, message, nil)
	e.cause = cause
	return e
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err carries an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key")
}
