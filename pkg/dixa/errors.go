package dixa

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Dixa API. It carries the
// HTTP status code, the server-provided message when the body could be
// parsed, and the raw response body for caller inspection.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Message    string `json:"message"    yaml:"message"`
	Body       []byte `json:"-"          yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("dixa: %s (status %d)", e.Message, e.StatusCode)
	}

	return fmt.Sprintf("dixa: request failed with status %d", e.StatusCode)
}

// NewAPIError builds an APIError from a response status and body. Dixa error
// bodies are JSON documents of the form {"message": "..."}; bodies that do
// not parse are kept raw and the message is left empty.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
	}

	return apiErr
}

// ErrorStatusCode returns the HTTP status carried by err, or 0 when err is
// not an APIError.
func ErrorStatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return ErrorStatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return ErrorStatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return ErrorStatusCode(err) == http.StatusForbidden
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return ErrorStatusCode(err) == http.StatusTooManyRequests
}
