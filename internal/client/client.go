package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/cdg-client/internal/auth"
	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/internal/http"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
)

// Client implements the cdg.Client interface.
type Client struct {
	httpClient   *http.Client
	keyManager   auth.KeyManager
	baseURL      string
	logger       cdg.Logger
	interceptors *cdg.InterceptorChain
	rateLimiter  *cdg.RateLimiter
}

var _ cdg.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *cdg.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// createInterceptorChain puts the built-in interceptors ahead of the configured ones.
func createInterceptorChain(config *cdg.Config) (*cdg.InterceptorChain, *cdg.RateLimiter) {
	chain := cdg.NewInterceptorChain()

	var limiter *cdg.RateLimiter

	if config.RequestsPerHour > 0 {
		limiter = cdg.NewRateLimiter(config.RequestsPerHour)
		chain.AddRequestInterceptor(cdg.RateLimitInterceptor(limiter))
	}

	if config.Logger != nil {
		if config.Debug {
			chain.AddRequestInterceptor(cdg.LoggingInterceptor(config.Logger))
		}

		chain.AddResponseInterceptor(cdg.LoggingResponseInterceptor(config.Logger))
	}

	if config.UserAgent != "" {
		chain.AddRequestInterceptor(cdg.UserAgentInterceptor(config.UserAgent))
	}

	if config.Interceptors != nil {
		for _, interceptor := range config.Interceptors.RequestInterceptors() {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.Interceptors.ResponseInterceptors() {
			chain.AddResponseInterceptor(interceptor)
		}
	}

	return chain, limiter
}

// New creates a new API client. It fails with cdg.ErrMissingCredential when no key can be
// resolved and with a cdg.URLConstructionError when BaseURL is unusable. The key is
// resolved here once and used for every request made by the client.
func New(config *cdg.Config) (*Client, error) {
	key, err := auth.ResolveKey(config)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = cdg.DefaultBaseURL
	}

	_, err = cdg.BuildURL(baseURL, cdg.CongressCurrent(cdg.NewDetailParams()), string(key))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return NewWithKeyManager(config, baseURL, key), nil
}

// NewWithKeyManager creates a client with a custom key manager. baseURL must already be
// valid.
func NewWithKeyManager(config *cdg.Config, baseURL string, keyManager auth.KeyManager) *Client {
	httpClient := http.NewClient(createHTTPClientOptions(config)...)
	chain, limiter := createInterceptorChain(config)

	return &Client{
		httpClient:   httpClient,
		keyManager:   keyManager,
		baseURL:      baseURL,
		logger:       config.Logger,
		interceptors: chain,
		rateLimiter:  limiter,
	}
}

// RateLimiter returns the client-side limiter, nil when RequestsPerHour is zero.
func (c *Client) RateLimiter() *cdg.RateLimiter {
	return c.rateLimiter
}

// URL implements cdg.Client.URL.
func (c *Client) URL(endpoint cdg.Endpoint) (string, error) {
	key, err := c.keyManager.GetKey(context.Background())
	if err != nil {
		return "", err
	}

	return cdg.BuildURL(c.baseURL, endpoint, key)
}

// Fetch implements cdg.Client.Fetch.
func (c *Client) Fetch(ctx context.Context, endpoint cdg.Endpoint) (*cdg.Structural, error) {
	fullURL, err := c.URL(endpoint)
	if err != nil {
		return nil, err
	}

	path, err := endpoint.Path()
	if err != nil {
		return nil, err
	}

	req := &cdg.Request{
		Method:  nethttp.MethodGet,
		Kind:    endpoint.Kind(),
		Path:    path,
		URL:     cdg.RedactURL(fullURL),
		Headers: make(nethttp.Header),
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(req.Headers))
	for key := range req.Headers {
		headers[key] = req.Headers.Get(key)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodGet,
		URL:     fullURL,
		Headers: headers,
	})

	intercepted := &cdg.Response{Error: err}
	if resp != nil {
		intercepted.StatusCode = resp.StatusCode
		intercepted.Headers = resp.Headers
		intercepted.Body = resp.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, req, intercepted)

	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", endpoint.Kind(), err)
	}

	if interceptErr != nil {
		return nil, interceptErr
	}

	structural, err := cdg.ParseStructural(resp.Body)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("Response body is not a JSON object", map[string]interface{}{
				"kind":  endpoint.Kind().String(),
				"url":   req.URL,
				"bytes": len(resp.Body),
			})
		}

		return nil, err
	}

	return structural, nil
}
