package errors

import "fmt"

// HTTPError is a domain error already mapped to an HTTP status code.
// Delivery layers produce these in mapError; pkg/response consumes them.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
