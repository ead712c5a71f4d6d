package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes used across services. Handlers map them to HTTP statuses
// through RespondError.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeForbidden  = "FORBIDDEN"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is the error type services return to handlers. It carries a
// machine-readable code, a user-facing message and the HTTP status to emit.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationError reports a missing or malformed required field.
func ValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NotFoundError reports an absent referenced entity.
func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}

// ConflictError reports a violated precondition, e.g. a slot already booked.
// Served as 400 to match the client contract, with the code distinguishing
// it from plain validation failures.
func ConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, HTTPStatus: http.StatusBadRequest}
}

// ForbiddenError reports a caller who is not a party to the resource.
func ForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

// InternalError wraps an unexpected store or gateway failure.
func InternalError(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, HTTPStatus: http.StatusInternalServerError, Err: err}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError writes a service error as a JSON response, mapping AppError
// statuses through and treating anything else as a 500.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(appErr.Message, zap.String("code", appErr.Code), zap.Error(appErr.Err))
		} else {
			logger.Warn(appErr.Message, zap.String("code", appErr.Code))
		}
		c.JSON(appErr.HTTPStatus, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	logger.Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Message: "Internal Server Error"})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
