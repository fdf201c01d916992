// Package config loads triage service configuration from a YAML file with
// .env file support and environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "triage"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8074
	defaultDBDriver        = "sqlite3"
	defaultDBDSN           = "file:triage.db?_foreign_keys=on"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultPollIntervalSec = 15
	defaultScrapeBatchSize = 3
	defaultScrapeRPS       = 5
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Config holds all configuration for the triage service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"TRIAGE_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"   yaml:"debug"`
}

// DatabaseConfig holds database configuration. Driver selects between the
// embedded sqlite store (default) and postgres for shared deployments.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" yaml:"driver"`
	DSN             string        `env:"DB_DSN"    yaml:"dsn"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// ScraperConfig holds social-scraper simulation settings.
type ScraperConfig struct {
	PollInterval time.Duration `env:"SCRAPER_POLL_INTERVAL" yaml:"poll_interval"`
	BatchSize    int           `env:"SCRAPER_BATCH_SIZE"    yaml:"batch_size"`
	RateLimit    int           `yaml:"rate_limit"`
	Burst        int           `yaml:"burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path and applies defaults.
func Load(path string) (*Config, error) {
	return loadWithDefaults(path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = defaultDBDriver
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = defaultDBDSN
	}
	if cfg.Database.MaxConnections == 0 {
		cfg.Database.MaxConnections = defaultDBMaxConns
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = defaultDBMaxIdleConns
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = time.Hour
	}
	if cfg.Scraper.PollInterval == 0 {
		cfg.Scraper.PollInterval = defaultPollIntervalSec * time.Second
	}
	if cfg.Scraper.BatchSize == 0 {
		cfg.Scraper.BatchSize = defaultScrapeBatchSize
	}
	if cfg.Scraper.RateLimit == 0 {
		cfg.Scraper.RateLimit = defaultScrapeRPS
	}
	if cfg.Scraper.Burst == 0 {
		cfg.Scraper.Burst = cfg.Scraper.RateLimit
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}
