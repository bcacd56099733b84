package config

import (
	"time"

	"github.com/ONSdigital/dp-healthdata-discovery/gateway"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

var cfg *Config

// Config represents service configuration for dp-healthdata-discovery
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	GatewayAPIURL              string        `envconfig:"GATEWAY_API_URL"`
	GatewayWebURL              string        `envconfig:"GATEWAY_WEB_URL"`
	GatewayAPIKey              string        `envconfig:"GATEWAY_API_KEY" json:"-"`
	GatewayTimeout             time.Duration `envconfig:"GATEWAY_TIMEOUT"`
	GatewayMaxRetries          int           `envconfig:"GATEWAY_MAX_RETRIES"`
	GatewayBackoffFactor       time.Duration `envconfig:"GATEWAY_BACKOFF_FACTOR"`
	GatewayMaxBackoff          time.Duration `envconfig:"GATEWAY_MAX_BACKOFF"`
	GatewayRequestsPerSecond   float64       `envconfig:"GATEWAY_REQUESTS_PER_SECOND"`
	SearchTimeout              time.Duration `envconfig:"SEARCH_TIMEOUT"`
	SearchMaxConcurrency       int           `envconfig:"SEARCH_MAX_CONCURRENCY"`
	DefaultPerPage             int           `envconfig:"DEFAULT_PER_PAGE"`
	SearchCacheSize            int           `envconfig:"SEARCH_CACHE_SIZE"`
	SearchCacheTTL             time.Duration `envconfig:"SEARCH_CACHE_TTL"`
	FallbackDataPath           string        `envconfig:"FALLBACK_DATA_PATH"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
}

// Get returns the default config with any modifications through environment
// variables. The first successful result is reused by later calls.
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	c, err := load()
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

func load() (*Config, error) {
	c := &Config{
		BindAddr:                   ":28700",
		GatewayAPIURL:              gateway.DefaultBaseURL,
		GatewayWebURL:              "https://www.healthdatagateway.org",
		GatewayTimeout:             30 * time.Second,
		GatewayMaxRetries:          3,
		GatewayBackoffFactor:       500 * time.Millisecond,
		GatewayMaxBackoff:          10 * time.Second,
		GatewayRequestsPerSecond:   5,
		SearchTimeout:              45 * time.Second,
		SearchMaxConcurrency:       gateway.DefaultMaxConcurrency,
		DefaultPerPage:             25,
		SearchCacheSize:            256,
		SearchCacheTTL:             5 * time.Minute,
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
	}

	if err := envconfig.Process("", c); err != nil {
		return nil, errors.Wrap(err, "failed to process environment configuration")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch {
	case c.GatewayMaxRetries < 0:
		return errors.New("GATEWAY_MAX_RETRIES must not be negative")
	case c.GatewayRequestsPerSecond < 0:
		return errors.New("GATEWAY_REQUESTS_PER_SECOND must not be negative")
	case c.SearchMaxConcurrency < 1:
		return errors.New("SEARCH_MAX_CONCURRENCY must be at least 1")
	case c.DefaultPerPage < 1:
		return errors.New("DEFAULT_PER_PAGE must be at least 1")
	case c.SearchCacheSize < 0:
		return errors.New("SEARCH_CACHE_SIZE must not be negative")
	}
	return nil
}

// Gateway returns the transport settings of the catalogue client
func (c *Config) Gateway() gateway.Config {
	return gateway.Config{
		BaseURL:           c.GatewayAPIURL,
		APIKey:            c.GatewayAPIKey,
		Timeout:           c.GatewayTimeout,
		MaxRetries:        c.GatewayMaxRetries,
		BackoffFactor:     c.GatewayBackoffFactor,
		MaxBackoff:        c.GatewayMaxBackoff,
		RequestsPerSecond: c.GatewayRequestsPerSecond,
	}
}

// CacheEnabled reports whether searches should be cached
func (c *Config) CacheEnabled() bool {
	return c.SearchCacheSize > 0
}

// GatewayOptions returns the catalogue client options, loading the static
// fallback data when a path is configured
func (c *Config) GatewayOptions() ([]gateway.Option, error) {
	opts := []gateway.Option{
		gateway.WithWebURL(c.GatewayWebURL),
		gateway.WithMaxConcurrency(c.SearchMaxConcurrency),
	}

	if c.FallbackDataPath != "" {
		fallback, err := gateway.LoadStaticFallbackFile(c.FallbackDataPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load fallback data")
		}
		opts = append(opts, gateway.WithFallback(fallback))
	}
	return opts, nil
}
