package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Error codes used when the server does not supply one.
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeHTTPError    = "HTTP_ERROR"
)

// Common errors
var (
	// ErrBaseURLRequired indicates a client was built without a base URL
	ErrBaseURLRequired = errors.New("base URL is required")
	// ErrTokenRequired indicates a preset that needs a bearer token was given none
	ErrTokenRequired = errors.New("access token is required")
	// ErrHealthCheckFailed is returned by Health for any probe failure
	ErrHealthCheckFailed = errors.New("API health check failed")
	// ErrUnauthorized matches 401 responses
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden matches 403 responses
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("resource not found")
	// ErrServer matches 5xx responses
	ErrServer = errors.New("server error")
	// ErrNetwork matches failures where no response was received
	ErrNetwork = errors.New("network error")
)

// Error is the normalized failure surfaced by every call.
type Error struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Code is the server's error code, or CodeHTTPError / CodeNetworkError.
	Code      string
	Message   string
	Path      string
	Timestamp time.Time
	// Details holds the raw "details" member of a structured error body.
	Details json.RawMessage
	Body    []byte
	// Err is the transport cause for network failures.
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Code, e.Path, e.StatusCode, e.Message)
}

// Unwrap returns the transport cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the status sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServer:
		return e.StatusCode >= 500
	case ErrNetwork:
		return e.StatusCode == 0
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a normalized 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func newNetworkError(path string, cause error) *Error {
	return &Error{
		Code:      CodeNetworkError,
		Message:   cause.Error(),
		Path:      path,
		Timestamp: time.Now(),
		Err:       cause,
	}
}

// newHTTPError builds an Error from a non-2xx response. A structured body
// ({error, message, details?, timestamp, path}) supplies the code, message
// and details; anything else falls back to the transport-level text.
func newHTTPError(path string, status int, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Code:       CodeHTTPError,
		Message:    fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status)),
		Path:       path,
		Timestamp:  time.Now(),
		Body:       body,
	}

	if !gjson.ValidBytes(body) {
		return e
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return e
	}

	if code := parsed.Get("error"); code.Type == gjson.String && code.String() != "" {
		e.Code = code.String()
	}
	if msg := parsed.Get("message"); msg.Type == gjson.String && msg.String() != "" {
		e.Message = msg.String()
	}
	if details := parsed.Get("details"); details.Exists() {
		e.Details = json.RawMessage(details.Raw)
	}
	return e
}
