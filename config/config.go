package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddress  = ":3000"
	defaultRateLimit    = 10
	defaultRateBurst    = 20
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultEnvironment  = "production"
	defaultLogLevel     = "info"
	defaultServiceName  = "technoheart-api"
)

// Config struct to hold the configuration settings
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Discord       DiscordConfig       `yaml:"discord"`
	Observability ObservabilityConfig `yaml:"observability"`
	Supporters    []SupporterSeed     `yaml:"supporters"`
}

// HTTPConfig holds the public API listener configuration.
type HTTPConfig struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" envSeparator:","`
	RateLimit      float64       `yaml:"rate_limit" env:"HTTP_RATE_LIMIT"`
	RateBurst      int           `yaml:"rate_burst" env:"HTTP_RATE_BURST"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
}

// PostgresConfig holds Postgres configuration. An empty DSN keeps all state in memory.
type PostgresConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL"`
}

// NATSConfig holds NATS configuration. An empty URL uses the in-process bus.
type NATSConfig struct {
	URL string `yaml:"url" env:"NATS_URL"`
}

// DiscordConfig holds the OAuth2 application credentials.
type DiscordConfig struct {
	ClientID     string `yaml:"client_id" env:"DISCORD_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"DISCORD_CLIENT_SECRET"`
	RedirectURI  string `yaml:"redirect_uri" env:"DISCORD_REDIRECT_URI"`
	APIBaseURL   string `yaml:"api_base_url" env:"DISCORD_API_BASE_URL"`
}

// Enabled reports whether real Discord credentials are configured.
func (d DiscordConfig) Enabled() bool {
	return d.ClientID != "" && d.ClientSecret != ""
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	ServiceName    string `yaml:"service_name" env:"SERVICE_NAME"`
	Environment    string `yaml:"environment" env:"ENV"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDRESS"`
	OTLPEndpoint   string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
}

// SupporterSeed is a supporter record loaded into the directory at startup.
type SupporterSeed struct {
	GuildID string  `yaml:"guild_id"`
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Avatar  string  `yaml:"avatar"`
	Points  float64 `yaml:"points"`
	Rank    int     `yaml:"rank"`
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment overrides and defaults. A missing file is not an error.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// PORT is what most hosting platforms inject.
	if cfg.HTTP.Address == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.HTTP.Address = ":" + port
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = defaultHTTPAddress
	}
	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = defaultRateLimit
	}
	if c.HTTP.RateBurst == 0 {
		c.HTTP.RateBurst = defaultRateBurst
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = defaultReadTimeout
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = defaultWriteTimeout
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = defaultServiceName
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = defaultEnvironment
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = defaultLogLevel
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("invalid http.rate_limit %v: must not be negative", c.HTTP.RateLimit)
	}
	if c.HTTP.RateBurst < 0 {
		return fmt.Errorf("invalid http.rate_burst %d: must not be negative", c.HTTP.RateBurst)
	}
	for i, s := range c.Supporters {
		if s.GuildID == "" || s.ID == "" {
			return fmt.Errorf("invalid supporters[%d]: guild_id and id are required", i)
		}
	}
	return nil
}
