package apiclient

import (
	"bytes"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

func headerDict(h http.Header) *zerolog.Event {
	d := zerolog.Dict()
	for k := range h {
		if k == "Authorization" || k == "X-Api-Key" {
			d.Str(k, "[redacted]")
			continue
		}
		d.Str(k, h.Get(k))
	}
	return d
}

func (c *Client) logRequest(req *http.Request, body []byte, attempt int) {
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("attempt", attempt).
		Dict("headers", headerDict(req.Header)).
		Bytes("body", body).
		Msg("API Request")
}

func (c *Client) logResponse(resp *http.Response, body []byte) {
	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("url", resp.Request.URL.String()).
		Dict("headers", headerDict(resp.Header)).
		Bytes("body", body).
		Msg("API Response")
}

func (c *Client) logError(apiErr *Error) {
	c.logger.Debug().
		Int("status", apiErr.StatusCode).
		Str("code", apiErr.Code).
		Str("path", apiErr.Path).
		Bytes("body", apiErr.Body).
		Str("reason", apiErr.Message).
		Msg("API Error")
}

// logAttemptError logs a non-2xx response of any attempt, including those
// that are retried. The body is restored for the retry loop and the caller.
func (c *Client) logAttemptError(path string, resp *http.Response) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		c.logger.Debug().Err(err).Int("status", resp.StatusCode).Str("path", path).Msg("API Error")
		return
	}
	c.logError(newHTTPError(path, resp.StatusCode, data))
}
