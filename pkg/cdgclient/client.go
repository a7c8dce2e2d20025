// Package cdgclient provides the main entry point for creating Congress.gov API clients
package cdgclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/cdg-client/internal/client"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
)

// New creates a new API client. When config.APIKey is empty the CDG_API_KEY environment
// variable is consulted, on construction and again on every request.
func New(config *cdg.Config) (cdg.Client, error) {
	if config == nil {
		return nil, cdg.ErrConfigRequired
	}

	resolved := *config

	if resolved.CredentialLookup == nil {
		resolved.CredentialLookup = os.LookupEnv
	}

	// Normalize base URL
	if resolved.BaseURL != "" && !strings.Contains(resolved.BaseURL, "://") {
		resolved.BaseURL = "https://" + resolved.BaseURL
	}

	c, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewFromEnvironment creates a client whose key comes from CDG_API_KEY.
func NewFromEnvironment() (cdg.Client, error) {
	return New(&cdg.Config{})
}

// NewWithKey creates a client with an explicit API key.
func NewWithKey(apiKey string) (cdg.Client, error) {
	return New(&cdg.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a client for a non-default API root, such as a proxy or mirror.
func NewWithBaseURL(baseURL, apiKey string) (cdg.Client, error) {
	return New(&cdg.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}
