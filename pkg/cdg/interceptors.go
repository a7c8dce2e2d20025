package cdg

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Request represents an outgoing request that can be intercepted. URL has its credential
// redacted.
type Request struct {
	Method   string
	Kind     Kind
	Path     string
	URL      string
	Headers  http.Header
	Metadata map[string]interface{}
}

// Response represents a received response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// RequestInterceptors returns a copy of the request interceptors in order.
func (c *InterceptorChain) RequestInterceptors() []RequestInterceptor {
	if c == nil {
		return nil
	}

	return append([]RequestInterceptor(nil), c.requestInterceptors...)
}

// ResponseInterceptors returns a copy of the response interceptors in order.
func (c *InterceptorChain) ResponseInterceptors() []ResponseInterceptor {
	if c == nil {
		return nil
	}

	return append([]ResponseInterceptor(nil), c.responseInterceptors...)
}

// Len returns the number of interceptors of both kinds.
func (c *InterceptorChain) Len() int {
	if c == nil {
		return 0
	}

	return len(c.requestInterceptors) + len(c.responseInterceptors)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"kind":   req.Kind.String(),
			"url":    req.URL,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"kind":        req.Kind.String(),
			"url":         req.URL,
			"status_code": resp.StatusCode,
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// RateLimiter enforces a request budget over a sliding one-hour window.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	sent   []time.Time
	now    func() time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerHour requests per hour.
func NewRateLimiter(requestsPerHour int) *RateLimiter {
	return &RateLimiter{limit: requestsPerHour, window: time.Hour, now: time.Now}
}

// Allow records a request and reports whether it fits in the budget.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cutoff := now.Add(-r.window)

	kept := r.sent[:0]
	for _, sent := range r.sent {
		if sent.After(cutoff) {
			kept = append(kept, sent)
		}
	}

	r.sent = kept

	if len(r.sent) >= r.limit {
		return false
	}

	r.sent = append(r.sent, now)

	return true
}

// Remaining returns how many requests are left in the current window.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.window)
	used := 0

	for _, sent := range r.sent {
		if sent.After(cutoff) {
			used++
		}
	}

	return r.limit - used
}

// RateLimitInterceptor rejects requests once the limiter's budget is spent.
func RateLimitInterceptor(limiter *RateLimiter) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if !limiter.Allow() {
			return fmt.Errorf("%w: %d requests per hour", ErrRateLimitExceeded, limiter.limit)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// UserAgentInterceptor sets the User-Agent header.
func UserAgentInterceptor(userAgent string) RequestInterceptor {
	return HeaderInterceptor(map[string]string{"User-Agent": userAgent})
}

// Metrics holds counters for one endpoint kind.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects API metrics per endpoint kind.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[Kind]*Metrics
	onChange func(kind Kind, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[Kind]*Metrics),
	}
}

// SetOnChange sets a callback for when metrics change.
func (m *MetricsCollector) SetOnChange(fn func(kind Kind, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a copy of the metrics for kind.
func (m *MetricsCollector) GetMetrics(kind Kind) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if metrics, ok := m.metrics[kind]; ok {
		return *metrics, true
	}

	return Metrics{}, false
}

// MetricsRequestInterceptor records request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata["start_time"] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		collector.mu.Lock()

		metrics, ok := collector.metrics[req.Kind]
		if !ok {
			metrics = &Metrics{}
			collector.metrics[req.Kind] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()

		if startTime, ok := req.Metadata["start_time"].(time.Time); ok {
			metrics.TotalLatency += time.Since(startTime)
			metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
		}

		if resp.Error != nil || resp.StatusCode >= http.StatusBadRequest {
			metrics.TotalErrors++
		}

		snapshot, onChange := *metrics, collector.onChange
		collector.mu.Unlock()

		if onChange != nil {
			onChange(req.Kind, snapshot)
		}

		return nil
	}
}
