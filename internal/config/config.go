package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ServiceName    = "pharmalink"
	ServiceVersion = "0.1.0"
)

type Config struct {
	DBDriver        string        `mapstructure:"db_driver"`
	DatabaseURL     string        `mapstructure:"database_url"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	SeedCatalog     bool          `mapstructure:"seed_catalog"`
	LedgerOpTimeout time.Duration `mapstructure:"ledger_op_timeout"`

	HTTPAddr  string `mapstructure:"http_addr"`
	JWTSecret string `mapstructure:"jwt_secret"`
	RedisAddr string `mapstructure:"redis_addr"`

	SMTPServer       string `mapstructure:"smtp_server"`
	SMTPPort         string `mapstructure:"smtp_port"`
	SMTPUser         string `mapstructure:"smtp_user"`
	SMTPPassword     string `mapstructure:"smtp_pass"`
	SMTPAuthDisabled bool   `mapstructure:"smtp_auth_disabled"`
	AlertFrom        string `mapstructure:"alert_from"`

	KafkaBroker    string `mapstructure:"kafka_broker"`
	KafkaTopic     string `mapstructure:"kafka_topic"`
	OtelEndpoint   string `mapstructure:"otel_endpoint"`
	OtelAuthHeader string `mapstructure:"otel_auth_header"`
	LogLevel       string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"db_driver":          "sqlite",
	"database_url":       "",
	"sqlite_path":        "pharmacy.db",
	"seed_catalog":       true,
	"ledger_op_timeout":  3 * time.Second,
	"http_addr":          ":8080",
	"jwt_secret":         "",
	"redis_addr":         "",
	"smtp_server":        "",
	"smtp_port":          "587",
	"smtp_user":          "",
	"smtp_pass":          "",
	"smtp_auth_disabled": false,
	"alert_from":         "",
	"kafka_broker":       "",
	"kafka_topic":        "pharmalink.ledger",
	"otel_endpoint":      "",
	"otel_auth_header":   "",
	"log_level":          "info",
}

// Load reads .env (if present), then an optional config.yaml, then the
// environment. Environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper applies defaults and environment bindings to v and decodes it.
func FromViper(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
		// Bind every key so Unmarshal sees env-only values.
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER is postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER is sqlite")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres, sqlite or memory)", c.DBDriver)
	}
	if c.LedgerOpTimeout <= 0 {
		return errors.New("LEDGER_OP_TIMEOUT must be positive")
	}
	return nil
}
