package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Client executes API calls against a single base URL. It is safe for
// concurrent use.
type Client struct {
	config     Config
	httpClient *http.Client
	token      atomic.Pointer[string]
	logger     zerolog.Logger
	backoff    retryablehttp.Backoff
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// New creates a new Client for baseURL.
func New(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http(s) URL", baseURL)
	}

	o := &clientOptions{config: defaultConfig(strings.TrimRight(baseURL, "/"))}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}

	c := &Client{
		config:     o.config,
		httpClient: httpClient,
		logger:     logger,
		backoff:    exponentialBackoff,
	}
	if o.accessToken != "" {
		c.SetAccessToken(o.accessToken)
	}
	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config.clone()
}

// SetAccessToken replaces the bearer token used by subsequent calls.
func (c *Client) SetAccessToken(token string) {
	c.token.Store(&token)
}

// ClearAccessToken removes the bearer token.
func (c *Client) ClearAccessToken() {
	c.token.Store(nil)
}

// AccessToken returns the current bearer token, or "".
func (c *Client) AccessToken() string {
	if t := c.token.Load(); t != nil {
		return *t
	}
	return ""
}

// Get issues a GET and decodes the response into out (which may be nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, newRequest(http.MethodGet, path, nil, opts), out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, newRequest(http.MethodPost, path, body, opts), out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, newRequest(http.MethodPut, path, body, opts), out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, newRequest(http.MethodPatch, path, body, opts), out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, newRequest(http.MethodDelete, path, nil, opts), out)
}

// PostMultipart issues a POST with a multipart/form-data body.
func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, out any, opts ...RequestOption) error {
	r := newRequest(http.MethodPost, path, nil, opts)
	r.Form = form
	if r.Form == nil {
		r.Form = NewForm()
	}
	return c.Do(ctx, r, out)
}

// Health probes GET /health. Every failure is reported as ErrHealthCheckFailed.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.Get(ctx, "/health", &status); err != nil {
		c.logger.Debug().Err(err).Msg("health check failed")
		return nil, ErrHealthCheckFailed
	}
	return &status, nil
}

func newRequest(method, path string, body any, opts []RequestOption) *Request {
	r := &Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do sends r, retrying transient failures, and decodes a 2xx body into out.
// Failures are returned as *Error.
func (c *Client) Do(ctx context.Context, r *Request, out any) error {
	token := c.AccessToken()

	body, multipartType, err := r.payload()
	if err != nil {
		return err
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, r.Method, c.resolve(r.Path, r.Query), rawBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = buildHeaders(c.config, token, r.Headers, multipartType)

	maxRetries := c.config.RetryAttempts
	if r.Retries != nil && *r.Retries >= 0 {
		maxRetries = *r.Retries
	}
	timeout := c.config.Timeout
	if r.Timeout > 0 {
		timeout = r.Timeout
	}

	resp, err := c.retryClient(r.Path, maxRetries, timeout, body).Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		apiErr := newNetworkError(r.Path, err)
		if c.config.Debug {
			c.logError(apiErr)
		}
		return apiErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := newNetworkError(r.Path, fmt.Errorf("failed to read response body: %w", err))
		if c.config.Debug {
			c.logError(apiErr)
		}
		return apiErr
	}

	// error responses were already logged per attempt by the response hook
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPError(r.Path, resp.StatusCode, data)
	}

	if c.config.Debug {
		c.logResponse(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", r.Path, err)
	}
	return nil
}

// retryClient builds the per-call retry loop. The shared transport is reused;
// only the per-attempt timeout and the retry budget differ between calls.
func (c *Client) retryClient(path string, maxRetries int, timeout time.Duration, body []byte) *retryablehttp.Client {
	hc := *c.httpClient
	hc.Timeout = timeout

	rc := &retryablehttp.Client{
		HTTPClient:   &hc,
		RetryWaitMin: BaseRetryDelay,
		RetryWaitMax: MaxRetryDelay,
		RetryMax:     maxRetries,
		CheckRetry:   checkRetry,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
		Backoff: func(minWait, maxWait time.Duration, attempt int, resp *http.Response) time.Duration {
			wait := c.backoff(minWait, maxWait, attempt, resp)
			if c.config.Debug {
				ev := c.logger.Debug().Int("attempt", attempt+1).Int("max_retries", maxRetries).Dur("delay", wait)
				if resp != nil {
					ev = ev.Int("status", resp.StatusCode)
				}
				ev.Msg("Retrying request")
			}
			return wait
		},
	}

	if c.config.Debug {
		rc.Logger = leveledLogger{logger: c.logger}
		rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			c.logRequest(req, body, attempt)
		}
		rc.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
			c.logAttemptError(path, resp)
		}
	}
	return rc
}

func (c *Client) resolve(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.config.BaseURL + path
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}
	return target
}
