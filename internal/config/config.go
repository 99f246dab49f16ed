// Package config loads credentials and settings for the ShipStation client.
//
// Credentials (API key + secret) come from the environment, after an
// optional .env file is loaded from the working directory or ./config.
// Non-secret settings (base URL, page size, fuzzy threshold) may come from
// an optional YAML settings file; environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by Load.
const (
	EnvAPIKey    = "SHIPSTATION_API_KEY"
	EnvAPISecret = "SHIPSTATION_API_SECRET"
	EnvBaseURL   = "SHIPSTATION_API_BASE"
)

// DefaultBaseURL is the production ShipStation API endpoint.
const DefaultBaseURL = "https://ssapi.shipstation.com"

// Defaults for tunable settings.
const (
	DefaultPageSize       = 500
	DefaultFuzzyThreshold = 65
	DefaultTimeout        = 10 * time.Second
)

// Config holds everything needed to construct a ShipStation client and run
// a workflow. It is built once per invocation and passed down explicitly;
// nothing reads the environment after Load returns.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string

	// PageSize is the single-page size used for status searches.
	PageSize int

	// FuzzyThreshold is the minimum similarity score (0-100) for fuzzy
	// name matches.
	FuzzyThreshold int

	// Timeout applies to every upstream request.
	Timeout time.Duration
}

// MissingCredentialsError reports absent API credentials. It is returned
// before any network call is attempted.
type MissingCredentialsError struct {
	// Vars lists the environment variables that were empty.
	Vars []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("ShipStation API credentials not configured: set %v", e.Vars)
}

// settingsFile is the YAML shape of the optional settings file.
type settingsFile struct {
	BaseURL        string `yaml:"base_url"`
	PageSize       int    `yaml:"page_size"`
	FuzzyThreshold int    `yaml:"fuzzy_threshold"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load builds a Config from the environment and an optional settings file.
//
// settingsPath may be empty, in which case only defaults and environment
// variables apply. A missing settings file at an explicit path is an error;
// missing .env files are not.
func Load(settingsPath string) (Config, error) {
	// Mirror the conventional .env locations. Both are optional.
	for _, p := range []string{".env", "config/.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	cfg := Config{
		BaseURL:        DefaultBaseURL,
		PageSize:       DefaultPageSize,
		FuzzyThreshold: DefaultFuzzyThreshold,
		Timeout:        DefaultTimeout,
	}

	if settingsPath != "" {
		s, err := readSettings(settingsPath)
		if err != nil {
			return Config{}, err
		}
		if s.BaseURL != "" {
			cfg.BaseURL = s.BaseURL
		}
		if s.PageSize > 0 {
			cfg.PageSize = s.PageSize
		}
		if s.FuzzyThreshold > 0 {
			cfg.FuzzyThreshold = s.FuzzyThreshold
		}
		if s.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(s.TimeoutSeconds) * time.Second
		}
	}

	if base := os.Getenv(EnvBaseURL); base != "" {
		cfg.BaseURL = base
	}

	cfg.APIKey = os.Getenv(EnvAPIKey)
	cfg.APISecret = os.Getenv(EnvAPISecret)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that credentials are present.
func (c Config) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.APISecret == "" {
		missing = append(missing, EnvAPISecret)
	}
	if len(missing) > 0 {
		return &MissingCredentialsError{Vars: missing}
	}
	return nil
}

func readSettings(path string) (settingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return settingsFile{}, fmt.Errorf("reading settings file: %w", err)
	}
	var s settingsFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return settingsFile{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return s, nil
}
