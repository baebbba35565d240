package errors

import (
	"net/http"

	"bloodbridge/internal/errors"
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

// Is matches any BaseError carrying the same business error code, so
// sentinel comparisons survive WithDetails copies.
func (e *BaseError) Is(target error) bool {
	var t *BaseError
	if errors.As(target, &t) {
		return e.errorCode == t.errorCode
	}

	return false
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
	// Submission validation errors; rejected before any state is created.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submission validation failed",
		"",
	)

	ErrMalformedRequestor = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_REQUESTOR",
		"Requestor binding must populate exactly one variant or be anonymous",
		"",
	)

	ErrInvalidBloodGroup = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BLOOD_GROUP",
		"Unknown blood group",
		"",
	)

	ErrNonPositiveUnits = NewBaseError(
		http.StatusBadRequest,
		"NON_POSITIVE_UNITS",
		"Requested units must be positive",
		"",
	)

	// Workflow state machine errors; no state change occurs.
	ErrInvalidStateTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATE_TRANSITION",
		"Record is no longer pending",
		"",
	)

	// Ledger errors; the approval fails and the request stays pending.
	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Stock cannot cover the requested units",
		"",
	)

	// Lookup errors.
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Blood request not found",
		"",
	)

	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"Blood donation not found",
		"",
	)

	ErrDonorNotFound = NewBaseError(
		http.StatusNotFound,
		"DONOR_NOT_FOUND",
		"Donor not found",
		"",
	)

	ErrPatientNotFound = NewBaseError(
		http.StatusNotFound,
		"PATIENT_NOT_FOUND",
		"Patient not found",
		"",
	)

	ErrStockEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"STOCK_ENTRY_NOT_FOUND",
		"No ledger entry for that blood group",
		"",
	)

	// Notification path errors; logged and isolated behind the async
	// boundary, never surfaced to the originating approval call.
	ErrNotificationDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"NOTIFICATION_DELIVERY_FAILED",
		"Alert channel rejected the message",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database error as an internal AppError.
func NewDatabaseExecuteError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		"Database operation failed",
		details,
	)
	if err != nil {
		base.details = base.details + ": " + err.Error()
	}

	return base
}
