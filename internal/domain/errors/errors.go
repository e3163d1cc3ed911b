// Package errors is the catalog of failures the API reports to clients. Each
// carries the HTTP status, a stable machine code and a message safe to show.
package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a catalog entry. The predefined values are never mutated;
// WithDetails and WithMessage return copies that still match them under
// errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

func (e *BaseError) WithMessage(message string) *BaseError {
	cp := *e
	cp.message = message

	return &cp
}

// WrapMessage adds internal context and a stack; clients still see Message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// ConflictError reports a uniqueness violation on field as "<field> already exists".
func ConflictError(field string) *BaseError {
	return ErrConflict.WithMessage(field + " already exists").WithDetails(field)
}

// DatabaseExecuteError hides a driver failure behind a generic 500 while
// keeping it reachable through Unwrap for logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
