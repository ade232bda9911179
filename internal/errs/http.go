package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewValidationError creates a 400 from collected field errors. The
// message enumerates every field-scoped reason.
func NewValidationError(fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: JoinFieldErrors(fieldErrors),
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError used by rate limiting.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusTooManyRequests,
		Message: message,
	}
}

// NewInternalServerError creates a 500 carrying the error's textual
// message. The stack trace stays in the logs, never in the response.
func NewInternalServerError(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}
