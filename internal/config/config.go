package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Store   StoreConfig   `mapstructure:"store"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ReadHeaderTimeoutSeconds bounds how long the server waits for request headers.
	ReadHeaderTimeoutSeconds int `mapstructure:"read_header_timeout_seconds" validate:"gt=0"`

	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// StoreConfig contains settings for the in-memory task store.
type StoreConfig struct {
	// Seed loads the three starter tasks at startup.
	Seed bool `mapstructure:"seed"`
}

// TracingConfig controls OpenTelemetry request spans.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// SampleRatio is the fraction of new traces recorded. Requests that
	// arrive with a sampled traceparent are always recorded.
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}
