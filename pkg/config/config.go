// Package config loads the CurseForge client configuration from an
// optional YAML file and CURSEFORGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Sternrassler/curseforge-client/pkg/client"
	"github.com/Sternrassler/curseforge-client/pkg/decode"
	"github.com/Sternrassler/curseforge-client/pkg/logging"
	"github.com/Sternrassler/curseforge-client/pkg/pagination"
)

// EnvPrefix prefixes every environment variable, e.g. CURSEFORGE_API_KEY.
const EnvPrefix = "CURSEFORGE"

// Config is the complete configuration.
type Config struct {
	API        APIConfig        `mapstructure:"api"`
	Decode     DecodeConfig     `mapstructure:"decode"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// APIConfig contains the connection settings of the API.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Key       string        `mapstructure:"key"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DecodeConfig selects the compatibility mode.
type DecodeConfig struct {
	Mode string `mapstructure:"mode"`
}

// PaginationConfig bounds paginated queries.
type PaginationConfig struct {
	PageSize   int `mapstructure:"page_size"`
	MaxResults int `mapstructure:"max_results"`
}

// RedisConfig contains the checkpoint store settings. An empty address
// disables checkpoints.
type RedisConfig struct {
	Address       string        `mapstructure:"address"`
	Password      string        `mapstructure:"password"`
	Database      int           `mapstructure:"database"`
	CheckpointTTL time.Duration `mapstructure:"checkpoint_ttl"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// MetricsConfig contains the metrics endpoint settings. An empty address
// disables the endpoint.
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply; a named file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := client.DefaultConfig("")

	v.SetDefault("api.base_url", defaults.BaseURL)
	v.SetDefault("api.key", "")
	v.SetDefault("api.user_agent", defaults.UserAgent)
	v.SetDefault("api.timeout", defaults.Timeout)

	v.SetDefault("decode.mode", string(decode.DefaultMode))

	v.SetDefault("pagination.page_size", pagination.DefaultPageSize)
	v.SetDefault("pagination.max_results", pagination.MaxResults)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.checkpoint_ttl", 24*time.Hour)

	v.SetDefault("log.level", string(logging.LevelInfo))
	v.SetDefault("log.pretty", false)

	v.SetDefault("metrics.address", "")
}

// Validate checks the values that client.New does not.
func (c *Config) Validate() error {
	if _, err := decode.ParseMode(c.Decode.Mode); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api timeout must be non-negative (got %s)", c.API.Timeout)
	}
	if c.Redis.CheckpointTTL < 0 {
		return fmt.Errorf("checkpoint ttl must be non-negative (got %s)", c.Redis.CheckpointTTL)
	}
	return nil
}

// ClientConfig converts the configuration into a client configuration.
// Range checks on page size and max results are left to client.New.
func (c *Config) ClientConfig() client.Config {
	mode, _ := decode.ParseMode(c.Decode.Mode)

	cfg := client.DefaultConfig(c.API.Key)
	cfg.BaseURL = c.API.BaseURL
	cfg.UserAgent = c.API.UserAgent
	cfg.Timeout = c.API.Timeout
	cfg.DecodeMode = mode
	cfg.PageSize = c.Pagination.PageSize
	cfg.MaxResults = c.Pagination.MaxResults
	return cfg
}

// LoggingConfig converts the configuration into a logger configuration.
func (c *Config) LoggingConfig() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Pretty = c.Log.Pretty
	return cfg
}

// CheckpointsEnabled reports whether a Redis address is configured.
func (c *Config) CheckpointsEnabled() bool {
	return c.Redis.Address != ""
}
