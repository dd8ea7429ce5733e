package apiclient

import (
	"maps"
	"net/http"
	"time"
)

// DefaultTimeout bounds each attempt when no timeout is configured.
const DefaultTimeout = 10000 * time.Millisecond

// Config is the construction-time configuration of a Client.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	Headers       map[string]string
	APIKey        string
	RetryAttempts int
	Debug         bool
}

func defaultConfig(baseURL string) Config {
	return Config{
		BaseURL:       baseURL,
		Timeout:       DefaultTimeout,
		Headers:       map[string]string{},
		RetryAttempts: DefaultRetryAttempts,
	}
}

func (c Config) clone() Config {
	out := c
	out.Headers = maps.Clone(c.Headers)
	if out.Headers == nil {
		out.Headers = map[string]string{}
	}
	return out
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	config      Config
	httpClient  *http.Client
	accessToken string
}

// WithAPIKey sends key as X-API-Key on every call.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.config.APIKey = key
	}
}

// WithTimeout sets the default per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.config.Timeout = timeout
		}
	}
}

// WithRetryAttempts sets the default number of retries after the first attempt.
func WithRetryAttempts(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.config.RetryAttempts = retries
		}
	}
}

// WithDebug turns request/response logging on or off.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.config.Debug = debug
	}
}

// WithHeader adds a default header sent on every call.
func WithHeader(key, value string) Option {
	return func(o *clientOptions) {
		o.config.Headers[key] = value
	}
}

// WithHeaders adds several default headers.
func WithHeaders(headers map[string]string) Option {
	return func(o *clientOptions) {
		maps.Copy(o.config.Headers, headers)
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is
// overridden per attempt.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithAccessToken sets the initial bearer token.
func WithAccessToken(token string) Option {
	return func(o *clientOptions) {
		o.accessToken = token
	}
}
