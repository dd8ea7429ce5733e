package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

// EnvPrefix prefixes environment overrides, e.g. SFR_CRYPTO_TOKEN.
const EnvPrefix = "SFR"

// Load reads configuration from configPath, or from the standard locations
// when empty. A missing file is not an error: defaults and environment
// variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".sfr"))
		}
		v.AddConfigPath("/etc/sfr/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("learning.base_url", "http://localhost:8080/api/learning")
	v.SetDefault("learning.timeout_ms", 10000)
	v.SetDefault("learning.retry_attempts", apiclient.DefaultRetryAttempts)
	v.SetDefault("learning.debug", false)
	// bound so AutomaticEnv can see them without a file
	v.SetDefault("learning.api_key", "")
	v.SetDefault("learning.token", "")

	v.SetDefault("crypto.base_url", "http://localhost:8080/api/v1")
	v.SetDefault("crypto.timeout_ms", 30000)
	v.SetDefault("crypto.retry_attempts", apiclient.DefaultRetryAttempts)
	v.SetDefault("crypto.debug", false)
	v.SetDefault("crypto.api_key", "")
	v.SetDefault("crypto.token", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if err := validateAPI("learning", cfg.Learning); err != nil {
		return err
	}
	if err := validateAPI("crypto", cfg.Crypto); err != nil {
		return err
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter.presets.%s is empty", name)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

func validateAPI(section string, api APIConfig) error {
	if api.BaseURL == "" {
		return fmt.Errorf("%s.base_url is required", section)
	}
	u, err := url.Parse(api.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s.base_url must be an absolute http(s) URL: %q", section, api.BaseURL)
	}
	if api.TimeoutMS <= 0 {
		return fmt.Errorf("%s.timeout_ms must be positive", section)
	}
	if api.RetryAttempts < 0 {
		return fmt.Errorf("%s.retry_attempts must not be negative", section)
	}
	return nil
}

// Options converts the section into executor options.
func (c APIConfig) Options() []apiclient.Option {
	opts := []apiclient.Option{
		apiclient.WithTimeout(time.Duration(c.TimeoutMS) * time.Millisecond),
		apiclient.WithRetryAttempts(c.RetryAttempts),
		apiclient.WithDebug(c.Debug),
		apiclient.WithAPIKey(c.APIKey),
		apiclient.WithAccessToken(c.Token),
	}
	if len(c.Headers) > 0 {
		opts = append(opts, apiclient.WithHeaders(c.Headers))
	}
	return opts
}
