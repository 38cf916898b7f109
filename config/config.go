// Package config loads the service configuration.
//
// Values are layered with koanf: struct defaults, then an optional YAML file (CONFIG_PATH or
// config.yaml), then environment variables. Environment variables keep the names the service has
// always used (PORT, DATABASE_URL, DB_HOST, ...).
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Drive     DriveConfig     `koanf:"drive"`
	Images    ImageConfig     `koanf:"images"`
	Card      CardConfig      `koanf:"card"`
	Catalog   CatalogConfig   `koanf:"catalog"`
}

type ServerConfig struct {
	Port            string        `koanf:"port"`
	BaseURL         string        `koanf:"base_url"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address on all interfaces.
// A leading colon in the port (":8080") is tolerated.
func (s ServerConfig) Addr() string {
	return "0.0.0.0:" + strings.TrimPrefix(s.Port, ":")
}

// DatabaseConfig holds either a full URL or the discrete connection settings.
type DatabaseConfig struct {
	URL      string `koanf:"url"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

// ConnString returns the connection string for the pgx driver.
// URL wins over the discrete settings.
func (d DatabaseConfig) ConnString() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}

	if d.Host == "" || d.User == "" || d.Name == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	port := d.Port
	if port == "" {
		port = "5432"
	}
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, port, d.User, d.Password, d.Name, sslmode), nil
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

// DriveConfig configures the Google Drive image source. Drive features are disabled when
// CredentialsFile is empty.
type DriveConfig struct {
	CredentialsFile string `koanf:"credentials_file"`
	FolderID        string `koanf:"folder_id"`
}

type ImageConfig struct {
	CacheDir     string        `koanf:"cache_dir"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	MaxFailures  uint32        `koanf:"max_failures"` // consecutive failures before the breaker opens
	OpenTimeout  time.Duration `koanf:"open_timeout"`
}

type CardConfig struct {
	ChromePath    string        `koanf:"chrome_path"`
	RenderTimeout time.Duration `koanf:"render_timeout"`
}

type CatalogConfig struct {
	SeedFile  string `koanf:"seed_file"`
	WatchSeed bool   `koanf:"watch_seed"`
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimPrefix(c.Server.Port, ":"))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Server.Port)
	}

	if _, err := c.Database.ConnString(); err != nil {
		return err
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			return fmt.Errorf("rate_limit.requests must be greater than 0")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be greater than 0")
		}
	}

	if c.Images.FetchTimeout <= 0 {
		return fmt.Errorf("images.fetch_timeout must be greater than 0")
	}
	if c.Card.RenderTimeout <= 0 {
		return fmt.Errorf("card.render_timeout must be greater than 0")
	}

	if c.Catalog.WatchSeed && c.Catalog.SeedFile == "" {
		return fmt.Errorf("catalog.watch_seed requires catalog.seed_file")
	}

	return nil
}
