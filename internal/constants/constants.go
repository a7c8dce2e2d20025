package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP attempt.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry and concurrency limits.
const (
	// DefaultRetryMax is the default number of retries. Requests are not repeated unless
	// configured.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second

	// DefaultConcurrencyLimit limits concurrent batch fetches.
	DefaultConcurrencyLimit = 3
)

// API limits.
const (
	// MaxPageLimit is the largest limit the API accepts.
	MaxPageLimit = 250

	// DefaultPageLimit is the page size the API uses when none is given.
	DefaultPageLimit = 20
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// TitleDisplayLength is the default length for displaying titles in tables.
	TitleDisplayLength = 60

	// ShortTitleDisplayLength is used when the terminal is narrow.
	ShortTitleDisplayLength = 40

	// NarrowTerminalWidth is the width below which short titles are used.
	NarrowTerminalWidth = 100
)
