package config

import (
	"appcenter-go/internal/cstmerr"
	"errors"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
)

// DatabaseConfig holds all database connection parameters.
type DatabaseConfig struct {
	Driver   string `mapstructure:"db_driver"` // "postgres" or "sqlite"
	Host     string `mapstructure:"db_host"`
	Port     int    `mapstructure:"db_port"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"db_sslmode"`
	Path     string `mapstructure:"db_path"` // sqlite file, ":memory:" allowed
}

// TokenStoreConfig selects where the auth token slot lives.
type TokenStoreConfig struct {
	Kind string `mapstructure:"kind"` // "file", "memory" or "db"
	Dir  string `mapstructure:"dir"`
}

// Config matches the structure of the config file and environment variables.
type Config struct {
	BaseURL             string           `mapstructure:"base_url"`
	Debug               bool             `mapstructure:"debug"`
	Timeout             time.Duration    `mapstructure:"timeout"`
	IdleConnTimeout     time.Duration    `mapstructure:"idle_conn_timeout"`
	TLSHandshakeTimeout time.Duration    `mapstructure:"tls_handshake_timeout"`
	CurrentVersion      string           `mapstructure:"current_version"`
	TokenStore          TokenStoreConfig `mapstructure:"token_store"`
	Database            DatabaseConfig   `mapstructure:"database"`
}

// EnvPrefix is prepended to every environment override, e.g. APPCENTER_BASE_URL.
const EnvPrefix = "APPCENTER"

// Load reads the configuration using Viper.
// An empty configPath searches the default locations; a missing file is not an error.
func Load(configPath string, logger hclog.Logger) (*Config, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	v := viper.New()

	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("debug", false)
	v.SetDefault("timeout", "30s")
	v.SetDefault("idle_conn_timeout", "30s")
	v.SetDefault("tls_handshake_timeout", "60s")
	v.SetDefault("current_version", "0.0.0")
	v.SetDefault("token_store.kind", "file")
	v.SetDefault("token_store.dir", "")

	v.SetDefault("database.db_driver", "sqlite")
	v.SetDefault("database.db_host", "localhost")
	v.SetDefault("database.db_port", 5432)
	v.SetDefault("database.db_user", "postgres")
	v.SetDefault("database.db_name", "appcenter")
	v.SetDefault("database.db_sslmode", "disable")
	v.SetDefault("database.db_path", "appcenter.db")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath("$HOME/.appcenter")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debug("config file not found, using defaults and environment variables")
		} else {
			return nil, cstmerr.NewFileIOError("failed to read config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cstmerr.NewConfigError("failed to unmarshal config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", "base_url", cfg.BaseURL, "token_store", cfg.TokenStore.Kind)
	return &cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return cstmerr.NewConfigError("base_url must not be empty", nil)
	}
	switch c.TokenStore.Kind {
	case "file", "memory", "db":
	default:
		return cstmerr.NewConfigError("unknown token_store.kind "+c.TokenStore.Kind, nil)
	}
	if c.TokenStore.Kind == "db" {
		switch c.Database.Driver {
		case "postgres", "sqlite":
		default:
			return cstmerr.NewConfigError("unknown database.db_driver "+c.Database.Driver, nil)
		}
	}
	return nil
}
