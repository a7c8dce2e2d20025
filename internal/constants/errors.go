package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'cdg config set api_key <key>' or set CDG_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")
	ErrLimitOutOfRange     = errors.New("limit must be between 1 and 250")
)
