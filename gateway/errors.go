package gateway

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// APIError is a failure reported by, or while talking to, the catalogue API.
// It is also the catch-all for 4xx responses with no more specific kind.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	Body       map[string]interface{}
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("catalogue api error (status %d): %s", e.StatusCode, msg)
	}
	return "catalogue api error: " + msg
}

// Code returns the HTTP status of the failed response, or 0 when no response
// was received
func (e *APIError) Code() int {
	return e.StatusCode
}

func (e *APIError) apiError() *APIError {
	return e
}

// AuthError is returned for 401 responses
type AuthError struct {
	APIError
}

// NotFoundError is returned for 404 responses. ResourceType and ID are filled
// in by single resource getters.
type NotFoundError struct {
	APIError
	ResourceType string
	ID           string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType == "" {
		return e.APIError.Error()
	}
	return fmt.Sprintf("%s %q not found", e.ResourceType, e.ID)
}

// RateLimitError is returned for 429 responses. RetryAfter is zero when the
// response did not say how long to wait.
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

// ValidationError is returned for 422 responses and carries the field level
// messages of the response body
type ValidationError struct {
	APIError
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.APIError.Error()
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], "; "))
	}
	return e.APIError.Error() + " [" + strings.Join(parts, ", ") + "]"
}

// ServerError is returned for 5xx responses
type ServerError struct {
	APIError
}

// TimeoutError is returned when the request timeout or the caller's deadline
// expires before a response arrives
type TimeoutError struct {
	APIError
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// ConnectionError is returned for network level failures
type ConnectionError struct {
	APIError
	Cause error
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// AsAPIError reports whether err is, or wraps, any kind of catalogue API
// failure and returns its common part
func AsAPIError(err error) (*APIError, bool) {
	var target interface{ apiError() *APIError }
	if errors.As(err, &target) {
		return target.apiError(), true
	}
	return nil, false
}

// IsNotFound reports whether err is, or wraps, a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// classify converts a non-2xx response into the matching error kind
func classify(status int, url string, header http.Header, body map[string]interface{}, text string) error {
	base := APIError{
		StatusCode: status,
		Message:    errorMessage(body, text),
		URL:        url,
		Body:       body,
	}

	switch {
	case status == http.StatusUnauthorized:
		return &AuthError{APIError: base}
	case status == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{APIError: base, RetryAfter: retryAfter(header)}
	case status == http.StatusUnprocessableEntity:
		return &ValidationError{APIError: base, Fields: fieldErrors(body)}
	case status >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	}
	return &base
}

func errorMessage(body map[string]interface{}, text string) string {
	for _, key := range []string{"message", "error"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	text = strings.TrimSpace(text)
	if r := []rune(text); len(r) > 200 {
		text = string(r[:200])
	}
	return text
}

// retryAfter reads a Retry-After header given in seconds
func retryAfter(header http.Header) time.Duration {
	v := strings.TrimSpace(header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	var secs int
	if _, err := fmt.Sscanf(v, "%d", &secs); err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func fieldErrors(body map[string]interface{}) map[string][]string {
	out := map[string][]string{}
	raw, ok := body["errors"].(map[string]interface{})
	if !ok {
		return out
	}
	for field, v := range raw {
		switch msgs := v.(type) {
		case string:
			out[field] = []string{msgs}
		case []interface{}:
			for _, m := range msgs {
				if s, ok := m.(string); ok {
					out[field] = append(out[field], s)
				}
			}
		}
	}
	return out
}
