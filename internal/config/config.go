package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/sukalov/lyricscraper/internal/utils"
)

// ErrMissingConfig marks an absent config file, section or key.
var ErrMissingConfig = errors.New("missing configuration")

const (
	DriverPostgres = "postgres"
	DriverLibSQL   = "libsql"
	DriverSQLite   = "sqlite"
)

type Postgres struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
}

type Browser struct {
	Headless         bool
	ChromePath       string
	SearchURL        string
	SearchTimeout    time.Duration
	ResultTimeout    time.Duration
	ContainerTimeout time.Duration
}

type Storage struct {
	Driver string
	DSN    string
}

type Redis struct {
	URL      string
	Password string
}

type Config struct {
	Postgres Postgres
	Browser  Browser
	Storage  Storage
	Redis    Redis
}

var requiredPostgresKeys = []string{"host", "port", "database", "username", "password"}

// Load reads the INI file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMissingConfig, path, err)
	}

	pg, err := file.GetSection("postgresql")
	if err != nil {
		return nil, fmt.Errorf("%w: [postgresql] section not found in %s", ErrMissingConfig, path)
	}
	for _, key := range requiredPostgresKeys {
		if !pg.HasKey(key) {
			return nil, fmt.Errorf("%w: [postgresql] %s not set in %s", ErrMissingConfig, key, path)
		}
	}

	cfg := &Config{
		Postgres: Postgres{
			Host:     pg.Key("host").String(),
			Port:     pg.Key("port").String(),
			Database: pg.Key("database").String(),
			Username: pg.Key("username").String(),
			Password: pg.Key("password").String(),
		},
	}

	browser := file.Section("browser")
	cfg.Browser = Browser{
		Headless:         browser.Key("headless").MustBool(false),
		ChromePath:       browser.Key("chrome_path").String(),
		SearchURL:        browser.Key("search_url").MustString("https://www.google.com"),
		SearchTimeout:    browser.Key("search_timeout").MustDuration(10 * time.Second),
		ResultTimeout:    browser.Key("result_timeout").MustDuration(30 * time.Second),
		ContainerTimeout: browser.Key("container_timeout").MustDuration(10 * time.Second),
	}

	storage := file.Section("storage")
	cfg.Storage = Storage{
		Driver: strings.ToLower(storage.Key("driver").MustString(DriverPostgres)),
		DSN:    storage.Key("dsn").String(),
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if path := utils.OptionalEnv("CHROME_PATH"); path != "" {
		cfg.Browser.ChromePath = path
	}
	if raw := utils.OptionalEnv("LYRICS_HEADLESS"); raw != "" {
		if headless, err := strconv.ParseBool(raw); err == nil {
			cfg.Browser.Headless = headless
		}
	}
	cfg.Redis = RedisFromEnv()
}

// RedisFromEnv reads the optional history settings. It needs no config file.
func RedisFromEnv() Redis {
	return Redis{
		URL:      utils.OptionalEnv("REDIS_URL"),
		Password: utils.OptionalEnv("REDIS_PASSWORD"),
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
	case DriverLibSQL, DriverSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: [storage] dsn is required for driver %q", ErrMissingConfig, c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	return nil
}

// DSN renders a postgres:// connection URL.
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.Username, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	return u.String()
}

// StorageDSN returns the driver name and connection string the store opens.
func (c *Config) StorageDSN() (string, string) {
	if c.Storage.Driver == DriverPostgres {
		return DriverPostgres, c.Postgres.DSN()
	}
	return c.Storage.Driver, c.Storage.DSN
}
