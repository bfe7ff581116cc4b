package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

type Config struct {
	Environment string `toml:"-"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStderr   bool   `toml:"log_to_stderr"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// store
	Store      string `toml:"store"`
	SQLitePath string `toml:"sqlite_path"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// telemetry
	TracingEnabled  bool   `toml:"tracing_enabled"`
	MetricsTextfile string `toml:"metrics_textfile"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)

	return cfg, nil
}

// Default is the development setup: sqlite file under ./data, logs to stderr.
func Default() *Config {
	return &Config{
		Environment:    "development",
		LogLevel:       "info",
		Store:          StoreSQLite,
		SQLitePath:     "./data/blogs.db",
		PostgresHost:   "localhost",
		PostgresPort:   "5432",
		PostgresDBName: "blogs",
		PostgresUser:   "postgres",
		RedisHost:      "localhost",
		RedisPort:      "6379",
	}
}

// Load reads the TOML file at path and returns the section for env,
// with unset fields filled from Default.
func Load(env, path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(env, string(content))
}

func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StorePostgres, StoreSQLite, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown store: [%s]", c.Store)
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		return fmt.Errorf("sqlite store needs sqlite_path")
	}
	return nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Store == "" {
		c.Store = d.Store
	}
	if c.SQLitePath == "" {
		c.SQLitePath = d.SQLitePath
	}
	if c.PostgresHost == "" {
		c.PostgresHost = d.PostgresHost
	}
	if c.PostgresPort == "" {
		c.PostgresPort = d.PostgresPort
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = d.PostgresDBName
	}
	if c.PostgresUser == "" {
		c.PostgresUser = d.PostgresUser
	}
	if c.RedisHost == "" {
		c.RedisHost = d.RedisHost
	}
	if c.RedisPort == "" {
		c.RedisPort = d.RedisPort
	}
}
