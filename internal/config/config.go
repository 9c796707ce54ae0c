package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// Environment is set from the section chosen at load time
	Environment string `toml:"-"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis, used only when tracked sessions are on
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// admin panel static files and uploaded media
	AdminDistPath string `toml:"admin_dist_path"`
	MediaRootPath string `toml:"media_root_path"`
	// when true, login sessions are stored server-side and a password
	// change invalidates all of them; when false the session cookie is
	// checked for presence only
	TrackedSessions bool `toml:"tracked_sessions"`
}

// IsProd decides whether the session cookie gets the Secure attribute
func (c *Config) IsProd() bool {
	return strings.ToLower(c.Environment) == "production"
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

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %q missing", env)
	}

	switch strings.ToLower(env) {
	case "prod", "production":
		cfg.Environment = "production"
	default:
		cfg.Environment = "development"
	}

	return cfg, nil
}
