package errors

import (
	"fmt"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches BaseErrors by error code so that WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Fitness profile not found",
		"",
	)

	ErrWorkoutPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKOUT_PLAN_NOT_FOUND",
		"Workout plan not found",
		"",
	)

	ErrMealPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_PLAN_NOT_FOUND",
		"Meal plan not found",
		"",
	)

	ErrPaymentSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_SESSION_NOT_FOUND",
		"Payment session not found",
		"",
	)

	ErrInvoiceNotFound = NewBaseError(
		http.StatusNotFound,
		"INVOICE_NOT_FOUND",
		"Invoice not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	ErrWorkflowRunNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKFLOW_RUN_NOT_FOUND",
		"Workflow run not found",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"Webhook signature verification failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrDuplicateRecord reports a unique constraint violation on insert.
	ErrDuplicateRecord = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_RECORD",
		"Record already exists",
		"",
	)

	// ErrVersionConflict is transient: the caller re-reads and retries.
	ErrVersionConflict = NewBaseError(
		http.StatusServiceUnavailable,
		"VERSION_CONFLICT",
		"Concurrent modification detected",
		"",
	)

	ErrLockNotAcquired = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCK_NOT_ACQUIRED",
		"Resource is busy",
		"",
	)

	// ErrRunInProgress means another worker holds the lease on a workflow run.
	// Deliveries that hit it are redelivered once the lease is released or expires.
	ErrRunInProgress = NewBaseError(
		http.StatusServiceUnavailable,
		"RUN_IN_PROGRESS",
		"Workflow run is being executed elsewhere",
		"",
	)

	ErrLLMMalformedResponse = NewBaseError(
		http.StatusBadGateway,
		"LLM_MALFORMED_RESPONSE",
		"Language model returned malformed output",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError reports a missing or invalid input field. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string   { return "Input validation failed" }
func (e *ValidationError) Details() string   { return e.Field + ": " + e.Reason }

// UpstreamError wraps a failure of an external collaborator (LLM, video
// search, mail, payment provider). It is transient by default.
type UpstreamError struct {
	Service string
	err     error
}

// NewUpstreamError wraps err as a failure of service
func NewUpstreamError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream failure: %v", e.Service, e.err)
}

func (e *UpstreamError) Unwrap() error     { return e.err }
func (e *UpstreamError) HTTPCode() int     { return http.StatusBadGateway }
func (e *UpstreamError) ErrorCode() string { return "UPSTREAM_FAILED" }
func (e *UpstreamError) Message() string   { return "External service failed" }
func (e *UpstreamError) Details() string   { return e.Service }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsRetryable reports whether err is transient. AppErrors with a 4xx code
// are permanent, everything else (5xx, upstream, unknown) may be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		code := appErr.HTTPCode()

		return code < 400 || code >= 500
	}

	return true
}
