package errors

import (
	"errors"
	"net/http"
)

// Error kinds. Every domain error wraps exactly one of these.
var (
	// ErrValidation is returned for malformed or missing input.
	ErrValidation = errors.New("validation error")
	// ErrUnauthenticated is returned for missing, invalid or expired credentials
	// and for failed logins.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrConflict is returned when a uniqueness rule would be violated.
	ErrConflict = errors.New("conflict")
	// ErrNotFound is returned when a resource is absent or owned by someone else.
	ErrNotFound = errors.New("not found")
)

// DomainError carries a client-facing message alongside its kind.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// Validation builds an ErrValidation error.
func Validation(message string) error {
	return &DomainError{Kind: ErrValidation, Message: message}
}

// Unauthenticated builds an ErrUnauthenticated error.
func Unauthenticated(message string) error {
	return &DomainError{Kind: ErrUnauthenticated, Message: message}
}

// Conflict builds an ErrConflict error.
func Conflict(message string) error {
	return &DomainError{Kind: ErrConflict, Message: message}
}

// NotFound builds an ErrNotFound error.
func NotFound(message string) error {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything that is not a
// domain error becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	message := err.Error()
	var de *DomainError
	if errors.As(err, &de) {
		message = de.Message
	}

	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, message, "VALIDATION_ERROR")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, message, "UNAUTHENTICATED")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, message, "CONFLICT")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, message, "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
