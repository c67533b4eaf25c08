package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StateStoreRedis    = "redis"
	StateStorePostgres = "postgres"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// ironlog backend
	BackendURL     string        `toml:"backend_url"`
	BackendTimeout time.Duration `toml:"backend_timeout"`
	UserHeader     string        `toml:"user_header"`
	Timezone       string        `toml:"timezone"`
	// active session state
	StateStore       string        `toml:"state_store"` // redis | postgres
	ActiveSessionTTL time.Duration `toml:"active_session_ttl"`
	LegacySessionEnd bool          `toml:"legacy_session_end"`
	// caching & rate limiting
	CacheSizeMB            int `toml:"cache_size_mb"`
	ExercisesCacheTTL      int `toml:"exercises_cache_ttl"` // seconds
	OverviewCacheTTL       int `toml:"overview_cache_ttl"`  // seconds
	MutationsPerMinAllowed int `toml:"mutations_per_min_allowed"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
}

type Toml struct {
	Development *Config
	DockerDev   *Config `toml:"dockerdev"`
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "ddev", "dockerdev":
		return t.DockerDev, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the table selected by env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing in [%s]", env, path)
	}

	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.BackendTimeout == 0 {
		c.BackendTimeout = 10 * time.Second
	}
	if c.StateStore == "" {
		c.StateStore = StateStoreRedis
	}
	if c.CacheSizeMB == 0 {
		c.CacheSizeMB = 16
	}
	if c.ExercisesCacheTTL == 0 {
		c.ExercisesCacheTTL = 300
	}
	if c.OverviewCacheTTL == 0 {
		c.OverviewCacheTTL = 60
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.BackendURL == "" {
		errs = append(errs, errors.New("backend_url not set"))
	}
	switch c.StateStore {
	case StateStoreRedis, StateStorePostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown state_store: %s", c.StateStore))
	}
	if c.BackendTimeout < 0 {
		errs = append(errs, errors.New("backend_timeout must not be negative"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	return errors.Join(errs...)
}

// Location is the time zone "today" is computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
