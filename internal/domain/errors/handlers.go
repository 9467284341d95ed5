package errors

import (
	"net/http"

	"conduit/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ARTICLE_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified body shape emitted by the error middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// DatabaseError represents an unexpected store failure, implementing the
// AppError interface. The cause stays on the error chain for server-side
// logging; clients only ever see the static message and details.
type DatabaseError struct {
	err       error
	errorCode string
	details   string
}

// NewDatabaseQueryError wraps an unexpected read failure from the store.
func NewDatabaseQueryError(err error, details string) *DatabaseError {
	return &DatabaseError{
		err:       err,
		errorCode: "DATABASE_QUERY_ERROR",
		details:   details,
	}
}

// NewDatabaseExecuteError wraps an unexpected write failure from the store.
func NewDatabaseExecuteError(err error, details string) *DatabaseError {
	return &DatabaseError{
		err:       err,
		errorCode: "DATABASE_EXECUTE_ERROR",
		details:   details,
	}
}

// Error implements the error interface
func (e *DatabaseError) Error() string {
	if e.err == nil {
		return "database operation failed"
	}

	return errors.Wrap(e.err, "database operation failed").Error()
}

// Unwrap exposes the underlying store failure
func (e *DatabaseError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *DatabaseError) Message() string {
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseError) Details() string {
	return e.details
}
