// Package constants centralizes shared defaults used across the client and CLI.
package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the public Dixa API host.
	DefaultBaseURL = "https://dev.dixa.io"
)

// HTTP defaults.
const (
	DefaultHTTPTimeout = 30 * time.Second

	DefaultRetryMax     = 3
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second

	DefaultUserAgent = "dixa-client-go"
)

// Pagination defaults.
const (
	StandardPageSize = 50
)

// CLI defaults.
const (
	ConfigDirName  = ".dixa"
	ConfigFileName = "config"
	EnvPrefix      = "DIXA"
)
