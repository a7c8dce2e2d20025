package client

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/cdg-client/internal/auth"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
)

// Test static errors.
var (
	ErrTestSomeError = errors.New("some error")
)

// TestAPIKey is the credential used by NewTestClient.
const TestAPIKey = "TESTKEY"

// NewTestClient creates a new test client with the given base URL and a fixed key.
func NewTestClient(baseURL string) *Client {
	return NewWithKeyManager(&cdg.Config{}, baseURL, auth.StaticKey(TestAPIKey))
}

// RunErrorTypeTests runs a series of error type checking tests with a common pattern.
func RunErrorTypeTests(t *testing.T, testName string, targetStatus int, checkFunction func(error) bool) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			expected bool
		}{
			{
				name:     "TransportError with target status",
				err:      &cdg.TransportError{StatusCode: targetStatus},
				expected: true,
			},
			{
				name:     "TransportError other status",
				err:      &cdg.TransportError{StatusCode: http.StatusInternalServerError},
				expected: targetStatus == http.StatusInternalServerError,
			},
			{
				name:     "wrapped TransportError with target status",
				err:      fmt.Errorf("fetching bill-list: %w", &cdg.TransportError{StatusCode: targetStatus}),
				expected: true,
			},
			{
				name:     "TransportError without response",
				err:      &cdg.TransportError{Err: ErrTestSomeError},
				expected: false,
			},
			{
				name:     "other error type",
				err:      ErrTestSomeError,
				expected: false,
			},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				assert.Equal(t, testCase.expected, checkFunction(testCase.err))
			})
		}
	})
}
