package response

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data"`
	Meta   *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Status  string    `json:"status"`
	Code    string    `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string    `json:"message"`           // User-friendly error message
	Details any       `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	Stack   string    `json:"stack,omitempty"`   // Only for 5xx in development
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.EchoRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Status: StatusSuccess,
		Data:   data,
		Meta:   meta(c),
	})
}

// OK is Success with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created is Success with 201.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Message returns a success envelope carrying only a message.
func Message(c echo.Context, message string) error {
	return Success(c, http.StatusOK, map[string]string{"message": message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Status:  StatusError,
		Code:    errorCode,
		Message: message,
		Details: details,
		Meta:    meta(c),
	})
}

// InternalError returns a 500 response; stack is only set in development.
func InternalError(c echo.Context, stack string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: "Internal server error, please try again later",
		Stack:   stack,
		Meta:    meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// AppError writes an application error with its code, message and details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything else is returned with a stack for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
