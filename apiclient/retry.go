package apiclient

import (
	"context"
	"math"
	"net/http"
	"time"
)

const (
	// DefaultRetryAttempts is the retry count used when none is configured.
	DefaultRetryAttempts = 3
	// BaseRetryDelay is the wait before the first retry.
	BaseRetryDelay = 1000 * time.Millisecond
	// MaxRetryDelay caps every wait.
	MaxRetryDelay = 5000 * time.Millisecond
)

// RetryableStatus reports whether a failed response with this status may be
// retried. Anything below 500 is final; 401, 403 and 404 are listed too so the
// auth and lookup failures never loop even if the threshold moves.
func RetryableStatus(status int) bool {
	if status < 500 ||
		status == http.StatusUnauthorized ||
		status == http.StatusForbidden ||
		status == http.StatusNotFound {
		return false
	}
	return true
}

// BackoffDelay returns the wait after the given zero-indexed attempt:
// min(BaseRetryDelay * 2^attempt, MaxRetryDelay).
func BackoffDelay(attempt int) time.Duration {
	return exponentialBackoff(BaseRetryDelay, MaxRetryDelay, attempt, nil)
}

// exponentialBackoff has the retryablehttp.Backoff signature. No jitter.
func exponentialBackoff(minWait, maxWait time.Duration, attempt int, _ *http.Response) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	mult := math.Pow(2, float64(attempt))
	wait := float64(minWait) * mult
	if wait > float64(maxWait) || math.IsInf(wait, 0) {
		return maxWait
	}
	return time.Duration(wait)
}

// checkRetry has the retryablehttp.CheckRetry signature. Transport failures
// are always retried; the attempt limit is enforced through RetryMax.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}
	return RetryableStatus(resp.StatusCode), nil
}
