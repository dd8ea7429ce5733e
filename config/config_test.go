package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/imagaram/sfr-sdk-go/apiclient"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
learning:
  base_url: https://api.sfr.tokyo/api/learning
  token: learning-token
  headers:
    X-Client: cli
crypto:
  base_url: https://api.sfr.tokyo/api/v1
  timeout_ms: 5000
  retry_attempts: 0
filter:
  presets:
    active: status == "ACTIVE"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Learning.BaseURL != "https://api.sfr.tokyo/api/learning" {
		t.Errorf("learning.base_url = %q", cfg.Learning.BaseURL)
	}
	if cfg.Learning.TimeoutMS != 10000 {
		t.Errorf("learning.timeout_ms default = %d, want 10000", cfg.Learning.TimeoutMS)
	}
	if cfg.Learning.RetryAttempts != 3 {
		t.Errorf("learning.retry_attempts default = %d, want 3", cfg.Learning.RetryAttempts)
	}
	if cfg.Crypto.TimeoutMS != 5000 || cfg.Crypto.RetryAttempts != 0 {
		t.Errorf("crypto section not loaded: %+v", cfg.Crypto)
	}
	if got := cfg.Filter.Presets["active"]; got != `status == "ACTIVE"` {
		t.Errorf("filter preset = %q", got)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// viper lower-cases map keys
	if cfg.Learning.Headers["x-client"] != "cli" {
		t.Errorf("headers = %v", cfg.Learning.Headers)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "crypto:\n  token: from-file\n")
	t.Setenv("SFR_CRYPTO_TOKEN", "from-env")
	t.Setenv("SFR_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Crypto.Token != "from-env" {
		t.Errorf("crypto.token = %q, want from-env", cfg.Crypto.Token)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Learning: APIConfig{BaseURL: "http://localhost:8080/api/learning", TimeoutMS: 10000, RetryAttempts: 3},
			Crypto:   APIConfig{BaseURL: "http://localhost:8080/api/v1", TimeoutMS: 30000, RetryAttempts: 3},
			Logging:  LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing base url", mutate: func(c *Config) { c.Learning.BaseURL = "" }, wantErr: "learning.base_url is required"},
		{name: "relative base url", mutate: func(c *Config) { c.Crypto.BaseURL = "/api/v1" }, wantErr: "crypto.base_url must be an absolute"},
		{name: "zero timeout", mutate: func(c *Config) { c.Crypto.TimeoutMS = 0 }, wantErr: "crypto.timeout_ms"},
		{name: "negative retries", mutate: func(c *Config) { c.Learning.RetryAttempts = -1 }, wantErr: "learning.retry_attempts"},
		{name: "empty preset", mutate: func(c *Config) { c.Filter.Presets = map[string]string{"x": " "} }, wantErr: "filter.presets.x"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "invalid logging level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "invalid logging format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestAPIConfigOptions(t *testing.T) {
	api := APIConfig{
		BaseURL:       "http://localhost:8080/api/v1",
		APIKey:        "key",
		TimeoutMS:     1500,
		RetryAttempts: 1,
		Debug:         true,
		Headers:       map[string]string{"X-Client": "cli"},
	}

	client, err := apiclient.New(api.BaseURL, zerolog.Nop(), api.Options()...)
	if err != nil {
		t.Fatalf("apiclient.New() error = %v", err)
	}

	got := client.Config()
	if got.Timeout != 1500*time.Millisecond {
		t.Errorf("Timeout = %v", got.Timeout)
	}
	if got.RetryAttempts != 1 || !got.Debug || got.APIKey != "key" {
		t.Errorf("unexpected config %+v", got)
	}
	if got.Headers["X-Client"] != "cli" {
		t.Errorf("Headers = %v", got.Headers)
	}
}
