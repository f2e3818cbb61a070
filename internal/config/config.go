package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	StorageSQLite = "sqlite"
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

const (
	defaultCookieMaxAge = 365 * 24 * time.Hour
	defaultPageSize     = 50
	maxPageSize         = 200
)

type Storage struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
	MySQLURI   string `yaml:"mysql_uri"`
}

type Feed struct {
	PageSize int `yaml:"page_size"`
}

type Config struct {
	BaseURL      string   `yaml:"base_url"`
	FeedURL      string   `yaml:"feed_url"`
	CookieMaxAge string   `yaml:"cookie_max_age"`
	Storage      Storage  `yaml:"storage"`
	Feed         Feed     `yaml:"feed"`
	Categories   []string `yaml:"categories"`
}

// CookieMaxAgeDuration returns the cookie tier's expiry horizon, one year
// when unset or unparseable.
func (c *Config) CookieMaxAgeDuration() time.Duration {
	d, err := time.ParseDuration(c.CookieMaxAge)
	if err != nil || d <= 0 {
		return defaultCookieMaxAge
	}
	return d
}

func (c *Config) PageSize() int {
	if c.Feed.PageSize <= 0 {
		return defaultPageSize
	}
	return min(c.Feed.PageSize, maxPageSize)
}

// SQLitePath returns the configured database file or the XDG data default.
func (c *Config) SQLitePath() string {
	if c.Storage.SQLitePath != "" {
		return c.Storage.SQLitePath
	}
	return filepath.Join(xdg.DataHome, "jcreader", "jcreader.db")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "jcreader", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, or the XDG default when path is empty.
// A missing file is created from the embedded defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Not fatal: the embedded defaults still apply.
		_ = writeDefaults(path)
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// Offline reports whether no site is configured. Preferences then live
// only in the client tiers.
func (c *Config) Offline() bool {
	return c.BaseURL == ""
}

// Validate checks a config after env overrides have been applied.
func Validate(cfg *Config) error {
	if err := validateURL("base_url", cfg.BaseURL); err != nil {
		return err
	}
	if err := validateURL("feed_url", cfg.FeedURL); err != nil {
		return err
	}

	switch cfg.Storage.Driver {
	case StorageSQLite, StorageMemory:
	case StorageMySQL:
		if cfg.Storage.MySQLURI == "" {
			return fmt.Errorf("storage: mysql_uri is required for the %s driver", StorageMySQL)
		}
	default:
		return fmt.Errorf("storage: unknown driver %q (valid: sqlite, mysql, memory)", cfg.Storage.Driver)
	}

	if cfg.CookieMaxAge != "" {
		if _, err := time.ParseDuration(cfg.CookieMaxAge); err != nil {
			return fmt.Errorf("cookie_max_age: %w", err)
		}
	}
	return nil
}

// validateURL accepts an empty value; both URLs are optional.
func validateURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
	}
	return nil
}
