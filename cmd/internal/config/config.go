package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the typed application configuration, read from the process environment.
type Config struct {
	Env      string         `mapstructure:"env"` // development, production
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	ViaCEP   ViaCEPConfig   `mapstructure:"viacep"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port      string  `mapstructure:"port"`
	BodyLimit string  `mapstructure:"body_limit"`
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second per client, 0 disables
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, mysql, sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	Path            string        `mapstructure:"path"` // sqlite only
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
}

type ViaCEPConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error, off
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// envKeys maps configuration keys to the environment variables they are read from.
var envKeys = map[string]string{
	"env":                        "GO_ENV",
	"server.port":                "PORT",
	"server.body_limit":          "BODY_LIMIT",
	"server.rate_limit":          "RATE_LIMIT",
	"database.driver":            "DB_DRIVER",
	"database.host":              "DATABASE_HOST",
	"database.port":              "DATABASE_PORT",
	"database.username":          "DATABASE_USERNAME",
	"database.password":          "DATABASE_PASSWORD",
	"database.name":              "DATABASE_NAME",
	"database.sslmode":           "DATABASE_SSLMODE",
	"database.path":              "DATABASE_PATH",
	"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"database.auto_migrate":      "DB_AUTO_MIGRATE",
	"database.slow_threshold":    "DB_SLOW_THRESHOLD",
	"viacep.base_url":            "VIA_CEP_BASE_URL",
	"viacep.timeout":             "VIACEP_TIMEOUT",
	"log.level":                  "LOG_LEVEL",
	"auth.jwt_secret":            "AUTH_JWT_SECRET",
	"cors.allow_origins":         "CORS_ALLOW_ORIGINS",
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthEnabled reports whether the bearer token placeholder should guard the API.
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.ViaCEP.BaseURL = strings.TrimRight(cfg.ViaCEP.BaseURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.ViaCEP.Timeout <= 0 {
		return fmt.Errorf("VIACEP_TIMEOUT must be positive, got %s", c.ViaCEP.Timeout)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	// Server
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.body_limit", "1M")
	v.SetDefault("server.rate_limit", 20)

	// Database
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "agrodog")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "database.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.slow_threshold", "200ms")

	// ViaCEP
	v.SetDefault("viacep.base_url", "https://viacep.com.br")
	v.SetDefault("viacep.timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("cors.allow_origins", []string{"*"})
}
