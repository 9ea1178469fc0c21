// Package errors defines the application error taxonomy. Every error the
// delivery layer can surface to a client is an AppError carrying an HTTP
// status, a stable business code, and a user-facing message.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// WithDetails returns a copy of the error carrying detailed information
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
	// Authentication errors. Registration conflicts are distinguishable,
	// but login failures are deliberately not: a missing user and a wrong
	// credential both surface as ErrInvalidCredentials so usernames cannot
	// be enumerated through the login form.
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"This username is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	// Dossier errors
	ErrApplicantNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICANT_NOT_FOUND",
		"No dossier exists with that ID",
		"",
	)

	ErrStatusTerminal = NewBaseError(
		http.StatusConflict,
		"STATUS_TERMINAL",
		"Expired dossiers cannot change status",
		"",
	)

	// Validation errors (bad user input; recoverable by correction)
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Import errors. Structural and content problems carry distinct codes
	// so the caller can tell a broken file from a file with bad rows.
	ErrWorkbookMalformed = NewBaseError(
		http.StatusBadRequest,
		"WORKBOOK_MALFORMED",
		"The uploaded spreadsheet could not be read",
		"",
	)

	ErrImportRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"IMPORT_REJECTED",
		"The import batch contains invalid rows and was not saved",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreError represents a record-store failure, implementing the AppError
// interface. Store failures are fatal to the triggering call; there is no
// retry or fallback persistence.
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "record store failure").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "The record store is unavailable"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
