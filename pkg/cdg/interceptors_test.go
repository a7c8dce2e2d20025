package cdg

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, level+":"+msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.add("error", msg) }

func TestInterceptorChain(t *testing.T) {
	t.Parallel()

	t.Run("runs in order", func(t *testing.T) {
		t.Parallel()

		var order []string

		chain := NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *Request) error {
			order = append(order, "first")

			return nil
		})
		chain.AddRequestInterceptor(func(ctx context.Context, req *Request) error {
			order = append(order, "second")

			return nil
		})
		chain.AddResponseInterceptor(func(ctx context.Context, req *Request, resp *Response) error {
			order = append(order, "response")

			return nil
		})

		req := &Request{Method: http.MethodGet, Kind: KindBillList}
		require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
		require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), req, &Response{StatusCode: http.StatusOK}))

		assert.Equal(t, []string{"first", "second", "response"}, order)
		assert.Equal(t, 3, chain.Len())
		assert.Len(t, chain.RequestInterceptors(), 2)
		assert.Len(t, chain.ResponseInterceptors(), 1)
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		called := false

		chain := NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *Request) error { return boom })
		chain.AddRequestInterceptor(func(ctx context.Context, req *Request) error {
			called = true

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &Request{})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "request interceptor failed")
		assert.False(t, called)
	})

	t.Run("nil chain is empty", func(t *testing.T) {
		t.Parallel()

		var chain *InterceptorChain

		require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &Request{}))
		require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &Request{}, &Response{}))
		assert.Zero(t, chain.Len())
		assert.Nil(t, chain.RequestInterceptors())
	})
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)

	limiter := NewRateLimiter(2)
	limiter.now = func() time.Time { return current }

	assert.Equal(t, 2, limiter.Remaining())
	assert.True(t, limiter.Allow())

	current = current.Add(30 * time.Minute)
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
	assert.Zero(t, limiter.Remaining())

	// The first request leaves the window.
	current = current.Add(31 * time.Minute)
	assert.Equal(t, 1, limiter.Remaining())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	current = current.Add(2 * time.Hour)
	assert.Equal(t, 2, limiter.Remaining())
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := RateLimitInterceptor(NewRateLimiter(1))

	require.NoError(t, interceptor(context.Background(), &Request{}))

	err := interceptor(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrRateLimitExceeded)
	assert.True(t, IsRateLimited(err))
	assert.Contains(t, err.Error(), "1 requests per hour")
}

func TestHeaderInterceptors(t *testing.T) {
	t.Parallel()

	req := &Request{}

	require.NoError(t, HeaderInterceptor(map[string]string{"X-Trace": "abc"})(context.Background(), req))
	require.NoError(t, UserAgentInterceptor("cdg-test/1.0")(context.Background(), req))

	assert.Equal(t, "abc", req.Headers.Get("X-Trace"))
	assert.Equal(t, "cdg-test/1.0", req.Headers.Get("User-Agent"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &Request{Method: http.MethodGet, Kind: KindMemberList, URL: "https://api.congress.gov/v3/member?api_key=***"}

	require.NoError(t, LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, LoggingResponseInterceptor(logger)(context.Background(), req, &Response{StatusCode: http.StatusOK}))
	require.NoError(t, LoggingResponseInterceptor(logger)(context.Background(), req, &Response{StatusCode: http.StatusBadGateway, Error: errors.New("bad gateway")}))

	assert.Equal(t, []string{"debug:API Request", "debug:API Response", "error:API Response Error"}, logger.entries)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := NewMetricsCollector()

	var changes []Kind

	collector.SetOnChange(func(kind Kind, metrics Metrics) {
		changes = append(changes, kind)
	})

	before := MetricsRequestInterceptor(collector)
	after := MetricsResponseInterceptor(collector)

	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusOK} {
		req := &Request{Kind: KindBillList}
		require.NoError(t, before(context.Background(), req))
		require.Contains(t, req.Metadata, "start_time")
		require.NoError(t, after(context.Background(), req, &Response{StatusCode: status}))
	}

	require.NoError(t, after(context.Background(), &Request{Kind: KindLawDetails}, &Response{Error: errors.New("refused")}))

	metrics, ok := collector.GetMetrics(KindBillList)
	require.True(t, ok)
	assert.Equal(t, int64(3), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())
	assert.Equal(t, metrics.TotalLatency/3, metrics.AverageLatency)

	laws, ok := collector.GetMetrics(KindLawDetails)
	require.True(t, ok)
	assert.Equal(t, int64(1), laws.TotalErrors)
	assert.Zero(t, laws.TotalLatency)

	_, ok = collector.GetMetrics(KindTreatyList)
	assert.False(t, ok)

	assert.Equal(t, []Kind{KindBillList, KindBillList, KindBillList, KindLawDetails}, changes)
}
