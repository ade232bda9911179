package errs

import (
	"fmt"
	"strings"
)

// FieldError is a single validation issue scoped to one request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type handlers and validation return. It carries
// the status the response should use, a human-readable message and, for
// validation failures, the per-field breakdown the message was built from.
type HTTPError struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is match any *HTTPError target regardless of content.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Fail wraps a message in the API failure envelope. Every error response
// body has this exact shape.
func Fail(message string) map[string]any {
	return map[string]any{
		"result":  nil,
		"message": message,
	}
}

// JoinFieldErrors renders collected field errors into one message, keeping
// the field scope visible for every entry.
func JoinFieldErrors(fieldErrors []FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Field == "" {
			parts = append(parts, fe.Error)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Error))
	}
	return strings.Join(parts, "; ")
}
