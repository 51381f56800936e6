package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorKind classifies failures so that transport code can map them to a status.
type ErrorKind string

const (
	KindValidation     ErrorKind = "VALIDATION"
	KindDuplicate      ErrorKind = "DUPLICATE"
	KindAuthentication ErrorKind = "AUTHENTICATION"
	KindAuthorization  ErrorKind = "AUTHORIZATION"
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindBusinessRule   ErrorKind = "BUSINESS_RULE"
	KindUnexpected     ErrorKind = "UNEXPECTED"
)

// AppError is an error carrying a kind and a client-facing message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError with the same kind and message, so sentinel
// values keep matching after being wrapped with a cause.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Wrap returns a copy of e that records cause.
func (e *AppError) Wrap(cause error) *AppError {
	return &AppError{Kind: e.Kind, Message: e.Message, Err: cause}
}

// New creates a new AppError
func New(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Validation(message string) *AppError     { return New(KindValidation, message) }
func Duplicate(message string) *AppError      { return New(KindDuplicate, message) }
func Authentication(message string) *AppError { return New(KindAuthentication, message) }
func Authorization(message string) *AppError  { return New(KindAuthorization, message) }
func NotFoundError(message string) *AppError  { return New(KindNotFound, message) }
func BusinessRule(message string) *AppError   { return New(KindBusinessRule, message) }

// Unexpected wraps an infrastructure failure. The cause is never shown to clients.
func Unexpected(message string, cause error) *AppError {
	return &AppError{Kind: KindUnexpected, Message: message, Err: cause}
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind ErrorKind) int {
	switch kind {
	case KindValidation, KindDuplicate, KindBusinessRule:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// As extracts the *AppError from err, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Success: false, Message: message})
}

// Respond writes err using its kind. Errors without a kind, and unexpected
// ones, are recorded on the gin context for the request logger and answered
// with a generic 500.
func Respond(c *gin.Context, err error) {
	appErr, ok := As(err)
	if !ok || appErr.Kind == KindUnexpected {
		_ = c.Error(err)
		message := "Internal server error"
		if ok {
			message = appErr.Message
		}
		InternalError(c, message)
		return
	}
	RespondWithError(c, StatusCode(appErr.Kind), appErr.Message)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}
