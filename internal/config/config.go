package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// EnvAPIKey is the env var holding the Intervals.icu API key.
	EnvAPIKey = "INTERVALS_ICU_API_KEY"
	// EnvAthleteID is the env var holding the Intervals.icu athlete id (e.g. i296970).
	EnvAthleteID = "INTERVALS_ICU_ATHLETE_ID"

	defaultAPIBaseURL     = "https://intervals.icu/api/v1"
	defaultRequestTimeout = 30 * time.Second
)

// placeholder values from the upstream setup docs; treated as not configured
var placeholderCredentials = map[string]bool{
	"your_api_key_here": true,
	"i123456":           true,
}

type Config struct {
	Environment string `toml:"-"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// intervals.icu api
	APIBaseURL            string `toml:"api_base_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`

	// http transport (only used with -transport=http)
	HTTPHost              string `toml:"http_host"`
	HTTPPort              int    `toml:"http_port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

// RequestTimeout returns the configured upstream request timeout, or the
// 30s default when not set.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file and returns the section for the given env,
// with defaults applied. Credentials are never read from the file, only from
// env vars (see CredentialsFromEnv).
func Load(env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config file %s has no section for env %s", path, env)
	}

	cfg.Environment = env
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}

	return cfg, nil
}

// Credentials is the per-invocation credential snapshot. Immutable after
// load, safe to share between concurrent invocations.
type Credentials struct {
	APIKey    string
	AthleteID string
}

// CredentialsFromEnv reads the Intervals.icu credentials from env vars,
// failing with the name of the missing field. Callers must not reach for the
// network when this returns an error.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		APIKey:    strings.TrimSpace(os.Getenv(EnvAPIKey)),
		AthleteID: strings.TrimSpace(os.Getenv(EnvAthleteID)),
	}
	if creds.APIKey == "" || placeholderCredentials[creds.APIKey] {
		return creds, fmt.Errorf("missing credential: %s", EnvAPIKey)
	}
	if creds.AthleteID == "" || placeholderCredentials[creds.AthleteID] {
		return creds, fmt.Errorf("missing credential: %s", EnvAthleteID)
	}
	return creds, nil
}

// Valid reports whether both credentials are present and not placeholders.
func (c Credentials) Valid() bool {
	if c.APIKey == "" || placeholderCredentials[c.APIKey] {
		return false
	}
	if c.AthleteID == "" || placeholderCredentials[c.AthleteID] {
		return false
	}
	return true
}
