package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Request describes one logical call.
type Request struct {
	Method string
	// Path is relative to the client's base URL.
	Path  string
	Query url.Values
	// Body is JSON-encoded when non-nil and Form is nil.
	Body any
	// Form, when set, is sent as multipart/form-data.
	Form    *Form
	Headers map[string]string
	// Timeout overrides the configured per-attempt timeout when positive.
	Timeout time.Duration
	// Retries overrides the configured retry count when non-nil.
	Retries *int
}

// RequestOption adjusts a single Request.
type RequestOption func(*Request)

// WithRequestHeader sets a header for this call only. It wins over defaults.
func WithRequestHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[key] = value
	}
}

// WithRequestHeaders merges several per-call headers.
func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		maps.Copy(r.Headers, headers)
	}
}

// WithRequestTimeout overrides the per-attempt timeout for this call.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(r *Request) {
		r.Timeout = timeout
	}
}

// WithRetries overrides the retry count for this call.
func WithRetries(retries int) RequestOption {
	return func(r *Request) {
		r.Retries = &retries
	}
}

// WithQuery merges query values into the call.
func WithQuery(values url.Values) RequestOption {
	return func(r *Request) {
		if len(values) == 0 {
			return
		}
		if r.Query == nil {
			r.Query = url.Values{}
		}
		for k, vs := range values {
			for _, v := range vs {
				r.Query.Add(k, v)
			}
		}
	}
}

// Form is a multipart payload. Fields and files are written in insertion order.
type Form struct {
	parts []formPart
}

type formPart struct {
	name     string
	value    string
	filename string
	file     io.Reader
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Field appends a text field.
func (f *Form) Field(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// File appends a file part read from r.
func (f *Form) File(name, filename string, r io.Reader) *Form {
	f.parts = append(f.parts, formPart{name: name, filename: filename, file: r})
	return f
}

// encode writes the form once so every attempt can replay the same bytes.
func (f *Form) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range f.parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", p.name, err)
			}
			continue
		}
		part, err := w.CreateFormFile(p.name, p.filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", p.name, err)
		}
		if _, err := io.Copy(part, p.file); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %s: %w", p.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// payload returns the encoded body and, for multipart, its Content-Type.
func (r *Request) payload() ([]byte, string, error) {
	if r.Form != nil {
		return r.Form.encode()
	}
	if r.Body == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(r.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, "", nil
}

// buildHeaders runs the header pipeline. Later steps win on collision.
func buildHeaders(cfg Config, token string, overrides map[string]string, multipartType string) http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	if cfg.APIKey != "" {
		headers.Set("X-API-Key", cfg.APIKey)
	}
	for k, v := range overrides {
		headers.Set(k, v)
	}
	if multipartType != "" {
		headers.Set("Content-Type", multipartType)
	}
	return headers
}
