package auth_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/cdg-client/internal/auth"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticKey(t *testing.T) {
	t.Parallel()

	key, err := auth.StaticKey("DEMO_KEY").GetKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "DEMO_KEY", key)

	_, err = auth.StaticKey("").GetKey(context.Background())
	require.ErrorIs(t, err, cdg.ErrMissingCredential)
}

func TestResolveKey(t *testing.T) {
	t.Parallel()

	lookup := func(values map[string]string, calls *int) func(string) (string, bool) {
		return func(name string) (string, bool) {
			*calls++
			value, ok := values[name]

			return value, ok
		}
	}

	tests := []struct {
		name      string
		apiKey    string
		values    map[string]string
		expected  auth.StaticKey
		wantCalls int
		wantErr   bool
	}{
		{name: "explicit key wins", apiKey: "EXPLICIT", values: map[string]string{cdg.CredentialEnvVar: "ENV"}, expected: "EXPLICIT"},
		{name: "falls back to lookup", values: map[string]string{cdg.CredentialEnvVar: "ENV"}, expected: "ENV", wantCalls: 1},
		{name: "empty lookup value", values: map[string]string{cdg.CredentialEnvVar: ""}, wantCalls: 1, wantErr: true},
		{name: "unset", values: map[string]string{}, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0

			key, err := auth.ResolveKey(&cdg.Config{APIKey: tt.apiKey, CredentialLookup: lookup(tt.values, &calls)})
			assert.Equal(t, tt.wantCalls, calls)

			if tt.wantErr {
				require.ErrorIs(t, err, cdg.ErrMissingCredential)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := auth.ResolveKey(nil)
		require.ErrorIs(t, err, cdg.ErrConfigRequired)
	})
}

func TestMaskKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***", auth.MaskKey("abc"))
	assert.Equal(t, "abcd***", auth.MaskKey("abcdefghij"))
}
