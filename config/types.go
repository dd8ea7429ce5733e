package config

// Config represents the complete configuration structure
type Config struct {
	Learning APIConfig     `mapstructure:"learning"`
	Crypto   APIConfig     `mapstructure:"crypto"`
	Filter   FilterConfig  `mapstructure:"filter"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the connection settings of one SFR API
type APIConfig struct {
	BaseURL       string            `mapstructure:"base_url"`
	APIKey        string            `mapstructure:"api_key"`
	Token         string            `mapstructure:"token"`
	TimeoutMS     int               `mapstructure:"timeout_ms"`
	RetryAttempts int               `mapstructure:"retry_attempts"`
	Debug         bool              `mapstructure:"debug"`
	Headers       map[string]string `mapstructure:"headers"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
