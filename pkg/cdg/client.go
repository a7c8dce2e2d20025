package cdg

import (
	"context"
	"time"
)

// Client performs requests against the API. Implementations are safe for concurrent use.
type Client interface {
	// Fetch builds the endpoint URL, performs a GET and parses the body into its
	// structural form. It never retries on its own unless Config.RetryMax asks for it.
	Fetch(ctx context.Context, endpoint Endpoint) (*Structural, error)

	// URL returns the request URL for endpoint, credential included.
	URL(endpoint Endpoint) (string, error)
}

// Logger is the structured logging interface used by the transport and helpers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cdg.Client.
//
// # Credential precedence
//
//  1. APIKey, when set.
//  2. CredentialLookup(CredentialEnvVar), when CredentialLookup is set. The cdgclient
//     package sets it to os.LookupEnv; nothing else in the library reads the environment.
//  3. Otherwise construction fails with ErrMissingCredential.
//
// The key is resolved once, when the client is constructed.
//
// # Timeouts and retries
//
// Per-request deadlines should come from the context passed to Fetch. RetryMax defaults
// to zero, so a failed request is reported to the caller instead of being repeated.
type Config struct {
	// APIKey: the api.data.gov key sent as the api_key query parameter.
	APIKey string
	// BaseURL: the versioned API root. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPTimeout: per-attempt timeout of the underlying HTTP client.
	HTTPTimeout time.Duration
	// RetryMax: retries for 5xx, 429 and connection errors. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// RequestsPerHour: client-side request budget. Zero disables the limit. The public
	// API allows 5000 requests per hour per key.
	RequestsPerHour int

	// Debug: logs every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// CredentialLookup: consulted for CredentialEnvVar when APIKey is empty.
	CredentialLookup func(key string) (string, bool)

	// Interceptors: optional chain run around every request, after the built-in ones.
	Interceptors *InterceptorChain
}

// CredentialEnvVar is the environment variable holding the API key.
const CredentialEnvVar = "CDG_API_KEY"

// ResolveAPIKey applies the credential precedence documented on Config.
func (c *Config) ResolveAPIKey() (string, error) {
	if c == nil {
		return "", ErrConfigRequired
	}

	if c.APIKey != "" {
		return c.APIKey, nil
	}

	if c.CredentialLookup != nil {
		if key, ok := c.CredentialLookup(CredentialEnvVar); ok && key != "" {
			return key, nil
		}
	}

	return "", ErrMissingCredential
}

// FetchAs fetches endpoint and materializes the response as T. The structural form is
// returned alongside any ShapeMismatch error so the caller can still render it.
func FetchAs[T any](ctx context.Context, client Client, endpoint Endpoint) (*T, *Structural, error) {
	structural, err := client.Fetch(ctx, endpoint)
	if err != nil {
		return nil, nil, err
	}

	shape, err := Materialize[T](structural)
	if err != nil {
		return nil, structural, err
	}

	return shape, structural, nil
}

// FetchShape fetches endpoint and materializes the response as the endpoint's default
// shape. Like FetchAs, the structural form survives a ShapeMismatch.
func FetchShape(ctx context.Context, client Client, endpoint Endpoint) (any, *Structural, error) {
	structural, err := client.Fetch(ctx, endpoint)
	if err != nil {
		return nil, nil, err
	}

	shape, err := MaterializeEndpoint(structural, endpoint)
	if err != nil {
		return nil, structural, err
	}

	return shape, structural, nil
}
