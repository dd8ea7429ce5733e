package apiclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryableStatus(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusBadRequest, false},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, false},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusGatewayTimeout, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, RetryableStatus(tt.status))
		})
	}
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1000 * time.Millisecond},
		{1, 2000 * time.Millisecond},
		{2, 4000 * time.Millisecond},
		{3, 5000 * time.Millisecond},
		{10, 5000 * time.Millisecond},
		{2000, 5000 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BackoffDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestCheckRetry(t *testing.T) {
	ctx := context.Background()

	retry, err := checkRetry(ctx, nil, errors.New("connection refused"))
	assert.NoError(t, err)
	assert.True(t, retry)

	retry, err = checkRetry(ctx, &http.Response{StatusCode: http.StatusOK}, nil)
	assert.NoError(t, err)
	assert.False(t, retry)

	retry, err = checkRetry(ctx, &http.Response{StatusCode: http.StatusServiceUnavailable}, nil)
	assert.NoError(t, err)
	assert.True(t, retry)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	retry, err = checkRetry(canceled, nil, errors.New("boom"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, retry)
}
