// Package config loads TOML configuration for the depline server.
//
// Configuration is optional: every field has a sensible default, so the
// server runs with no config file at all. A minimal file looks like:
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mlutz/depline/pkg/errors"
)

// Cache backend names accepted in [cache].backend.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the full server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     duration `toml:"read_timeout"`
	WriteTimeout    duration `toml:"write_timeout"`
	ShutdownTimeout duration `toml:"shutdown_timeout"`

	// MaxUploadBytes caps the size of uploaded dependency documents.
	MaxUploadBytes int64 `toml:"max_upload_bytes"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"` // none, file, redis
	Dir       string   `toml:"dir"`     // file backend; empty = XDG default
	RedisAddr string   `toml:"redis_addr"`
	TTL       duration `toml:"ttl"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// duration supports "30s"-style strings in TOML.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     duration{10 * time.Second},
			WriteTimeout:    duration{10 * time.Second},
			ShutdownTimeout: duration{5 * time.Second},
			MaxUploadBytes:  4 << 20, // 4 MiB
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     duration{24 * time.Hour},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML config file, applying defaults for absent fields.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case BackendNone, BackendFile, BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (expected none, file, or redis)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis requires redis_addr")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown log level %q", c.Log.Level)
	}
	return nil
}
