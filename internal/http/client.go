package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultUserAgent is sent unless the request carries its own User-Agent header.
const DefaultUserAgent = "cdg-client"

// Client is the HTTP transport. It requests fully built URLs as given and reports non-2xx
// responses as *cdg.TransportError.
type Client struct {
	httpClient *retryablehttp.Client
	logger     cdg.Logger
	debug      bool
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger cdg.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig sets retry parameters.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Hand the last response back instead of a "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		logger := client.logger
		retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			if attempt > 0 {
				logger.Warn("Retrying HTTP request", map[string]interface{}{
					"attempt": attempt,
					"url":     cdg.RedactURL(req.URL.String()),
				})
			}
		}
	}

	return client
}

// Request represents an HTTP request. URL is sent exactly as given, credential included.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
}

// Response represents an HTTP response. URL is the requested URL with the key redacted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        string
}

// Do performs an HTTP request. On a non-2xx status both the response and a
// *cdg.TransportError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	redacted := cdg.RedactURL(req.URL)

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, &cdg.TransportError{URL: redacted, Err: redactError(err)}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", DefaultUserAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    redacted,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &cdg.TransportError{URL: redacted, Err: redactError(err)}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &cdg.TransportError{StatusCode: httpResp.StatusCode, URL: redacted, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		URL:        redacted,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"url":      redacted,
			"bytes":    len(body),
			"duration": time.Since(start).String(),
		})
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, &cdg.TransportError{StatusCode: httpResp.StatusCode, URL: redacted, Body: body}
	}

	return resp, nil
}

// Get performs a GET request for rawURL.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		URL:    rawURL,
	})
}

// redactError strips the key from the URL carried by a *url.Error.
func redactError(err error) error {
	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: cdg.RedactURL(urlErr.URL), Err: urlErr.Err}
	}

	return err
}
