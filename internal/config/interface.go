package config

import "codeberg.org/mutker/hwreport/internal/query"

// Provider defines the interface for accessing loaded configuration.
// Values are immutable after loading.
type Provider interface {
	// Options returns the query options the configuration describes
	Options() query.Options

	// Validate checks if the configuration is valid
	// Returns nil if valid, error with validation details otherwise
	Validate() error
}

var _ Provider = (*Config)(nil)
