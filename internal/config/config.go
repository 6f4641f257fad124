// Package config loads client settings from defaults, a YAML file, a .env file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/burrow/internal/logging"
	"github.com/aretw0/burrow/pkg/protocol"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BURROW_"

// Defaults.
const (
	DefaultHost = "localhost"
	DefaultPort = 13050
)

// Config holds every setting of a client run.
type Config struct {
	Host        string `yaml:"host" json:"host" env:"HOST"`
	Port        int    `yaml:"port" json:"port" env:"PORT"`
	Reservation string `yaml:"reservation" json:"reservation,omitempty" env:"RESERVATION"`
	GameType    string `yaml:"game_type" json:"game_type" env:"GAME_TYPE"`

	Log LogConfig `yaml:"log" json:"log" envPrefix:"LOG_"`

	MetricsAddr  string      `yaml:"metrics_addr" json:"metrics_addr,omitempty" env:"METRICS_ADDR"`
	SnapshotDir  string      `yaml:"snapshot_dir" json:"snapshot_dir,omitempty" env:"SNAPSHOT_DIR"`
	Redis        RedisConfig `yaml:"redis" json:"redis" envPrefix:"REDIS_"`
	RedactNames  []string    `yaml:"redact_names" json:"redact_names,omitempty" env:"REDACT_NAMES" envSeparator:","`
	OTelEndpoint string      `yaml:"otel_endpoint" json:"otel_endpoint,omitempty" env:"OTEL_ENDPOINT"`
	Quiet        bool        `yaml:"quiet" json:"quiet" env:"QUIET"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" env:"LEVEL"`
	Format string `yaml:"format" json:"format" env:"FORMAT"`
}

// RedisConfig points the snapshot store at a Redis server.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr,omitempty" env:"ADDR"`
	Password string        `yaml:"password" json:"-" env:"PASSWORD"`
	DB       int           `yaml:"db" json:"db" env:"DB"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" env:"TTL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		GameType: protocol.DefaultGameType,
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load builds a Config in increasing order of precedence: defaults, the YAML file at path, the
// dotenv file, then the process environment. An empty path skips the file; an empty dotenv path
// skips dotenv. A missing dotenv file is not an error, a missing config file is.
func Load(path, dotenv string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	environ := env.ToMap(os.Environ())
	if dotenv != "" {
		values, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", dotenv, err)
		}
		for k, v := range values {
			// Real environment variables win over the file.
			if _, ok := environ[k]; !ok {
				environ[k] = v
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the client cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, errors.New("host must not be empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.SnapshotDir != "" && c.Redis.Addr != "" {
		errs = append(errs, errors.New("snapshot_dir and redis.addr are mutually exclusive"))
	}
	return errors.Join(errs...)
}

// Addr is the server address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
