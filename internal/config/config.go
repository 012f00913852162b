package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is used when no config file or environment override exists.
const DefaultAPIBaseURL = "https://api.barhop.app"

// Duration wraps time.Duration so it can be parsed from "30s"-style strings
// in both YAML and environment variables.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler (used by envconfig).
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(raw))
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the client configuration.
//
// Resolution order (lowest to highest precedence):
//  1. built-in defaults
//  2. config file (~/.barhop/config.yaml)
//  3. environment variables (BARHOP_*)
type Config struct {
	// APIBaseURL is the base URL of the barhop REST backend
	APIBaseURL string `yaml:"api_base_url" envconfig:"API_URL"`

	// RequestTimeout bounds every outbound API call
	RequestTimeout Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`

	// CredentialsPath is where the bearer token is persisted
	CredentialsPath string `yaml:"credentials_path" envconfig:"CREDENTIALS_PATH"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`
}

// Dir returns the barhop config directory (~/.barhop).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".barhop"), nil
}

// Default returns the built-in configuration defaults.
func Default() Config {
	cfg := Config{
		APIBaseURL:     DefaultAPIBaseURL,
		RequestTimeout: Duration(30 * time.Second),
		LogLevel:       "warn",
		LogFormat:      "text",
	}
	if dir, err := Dir(); err == nil {
		cfg.CredentialsPath = filepath.Join(dir, "credentials.json")
	}
	return cfg
}

// Load resolves the effective configuration from defaults, the config file,
// and environment variables.
func Load() (Config, error) {
	cfg := Default()

	dir, err := Dir()
	if err == nil {
		if err := loadFile(filepath.Join(dir, "config.yaml"), &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process("barhop", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment config: %w", err)
	}

	return cfg, cfg.Validate()
}

// LoadFile resolves configuration from an explicit file path plus the
// environment, bypassing the default config directory.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}

	if err := envconfig.Process("barhop", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment config: %w", err)
	}

	return cfg, cfg.Validate()
}

// loadFile overlays cfg with values from a YAML file. A missing file is not
// an error; a present but unparseable file is.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.CredentialsPath == "" {
		return fmt.Errorf("credentials_path must not be empty")
	}
	return nil
}

// Write persists the configuration to the given path as YAML.
func (c Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
