package auth

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
)

// KeyManager supplies the API key a client was constructed with.
type KeyManager interface {
	GetKey(ctx context.Context) (string, error)
}

// StaticKey is a KeyManager for a fixed key. Clients resolve their key once and hold it
// as a StaticKey for their whole lifetime.
type StaticKey string

// GetKey returns the key or cdg.ErrMissingCredential when it is empty.
func (k StaticKey) GetKey(ctx context.Context) (string, error) {
	if k == "" {
		return "", cdg.ErrMissingCredential
	}

	return string(k), nil
}

// ResolveKey applies the precedence documented on cdg.Config and returns the key as a
// StaticKey. The lookup runs at most once.
func ResolveKey(config *cdg.Config) (StaticKey, error) {
	key, err := config.ResolveAPIKey()
	if err != nil {
		return "", err
	}

	return StaticKey(key), nil
}

// MaskKey keeps the first four characters of key for display.
func MaskKey(key string) string {
	const visible = 4

	if len(key) <= visible {
		return constants.MaskedSecret
	}

	return key[:visible] + strings.Repeat("*", len(constants.MaskedSecret))
}
