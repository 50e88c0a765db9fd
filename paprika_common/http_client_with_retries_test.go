package paprika_common

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryOptions(maxRetries int) RetryOptions {
	opts := DefaultRetryOptions()
	opts.MaxRetries = maxRetries
	opts.BaseBackoff = time.Millisecond
	opts.RequestTimeout = 5 * time.Second
	return opts
}

// recordingHandler counts status handler callbacks
type recordingHandler struct {
	requests atomic.Int32
	retries  atomic.Int32
}

func (h *recordingHandler) OnRequest(status string) { h.requests.Add(1) }
func (h *recordingHandler) OnRetry()                { h.retries.Add(1) }

func newTestRequest(t *testing.T, serverURL string) *http.Request {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, serverURL, nil)
	require.NoError(t, err)
	return req
}

func TestExecuteRequest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	handler := &recordingHandler{}
	client := NewHTTPClientWithRetries(fastRetryOptions(3), handler, nil)

	body, duration, err := client.ExecuteRequest(newTestRequest(t, server.URL))

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Greater(t, duration, time.Duration(0))
	assert.Equal(t, int32(1), handler.requests.Load())
	assert.Equal(t, int32(0), handler.retries.Load())
}

func TestExecuteRequest_RetriesOnServerError(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`ok`))
	}))
	defer server.Close()

	handler := &recordingHandler{}
	client := NewHTTPClientWithRetries(fastRetryOptions(3), handler, nil)

	body, _, err := client.ExecuteRequest(newTestRequest(t, server.URL))

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, int32(1), handler.retries.Load())
}

func TestExecuteRequest_DoesNotRetryClientError(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`bad request`))
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(3), nil, nil)

	_, _, err := client.ExecuteRequest(newTestRequest(t, server.URL))

	require.Error(t, err)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestExecuteRequest_NotFoundSurfacesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"id not found"}`))
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(3), nil, nil)

	_, _, err := client.ExecuteRequest(newTestRequest(t, server.URL))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "id not found")
}

func TestExecuteRequest_AllAttemptsExhausted(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(2), nil, nil)

	_, _, err := client.ExecuteRequest(newTestRequest(t, server.URL))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 attempts failed")
	assert.Equal(t, int32(2), hits.Load())
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	base := 100 * time.Millisecond

	assert.Equal(t, base, calculateBackoffWithJitter(base, 0))

	for attempt := 1; attempt <= 4; attempt++ {
		expected := time.Duration(float64(base) * float64(uint(1)<<uint(attempt-1)))
		backoff := calculateBackoffWithJitter(base, attempt)
		assert.GreaterOrEqual(t, backoff, expected)
		assert.Less(t, backoff, expected+expected/2)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	assert.True(t, isRetryableStatus(http.StatusTooManyRequests))
	assert.True(t, isRetryableStatus(http.StatusInternalServerError))
	assert.True(t, isRetryableStatus(http.StatusBadGateway))
	assert.True(t, isRetryableStatus(http.StatusServiceUnavailable))
	assert.True(t, isRetryableStatus(http.StatusGatewayTimeout))

	assert.False(t, isRetryableStatus(http.StatusOK))
	assert.False(t, isRetryableStatus(http.StatusBadRequest))
	assert.False(t, isRetryableStatus(http.StatusNotFound))
}

func TestNewRateLimiter(t *testing.T) {
	assert.Nil(t, NewRateLimiter(0))
	assert.Nil(t, NewRateLimiter(-1))

	limiter := NewRateLimiter(10)
	assert.NotNil(t, limiter)
	assert.Equal(t, 10, limiter.Burst())

	fractional := NewRateLimiter(0.5)
	assert.NotNil(t, fractional)
	assert.Equal(t, 1, fractional.Burst())
}
