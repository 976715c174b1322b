// Package config resuelve la configuración del servidor: defaults, archivo TOML
// opcional y, por encima, flags/variables de entorno.
package config

import (
	"os"
	"strconv"
	"strings"

	"zookeepr-api/internal/platform/logger"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultPort     = "3001"
	DefaultDataFile = "data/animals.json"

	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

var (
	ErrConfigNotFound = goerr.New("configuration file not found")
	ErrInvalidConfig  = goerr.New("invalid configuration")
)

type Config struct {
	Port  string `toml:"port"`
	Store Store  `toml:"store"`
	Log   Log    `toml:"log"`
	HTTP  HTTP   `toml:"http"`
}

type Store struct {
	Driver      string `toml:"driver"`
	DataFile    string `toml:"data_file"`
	SQLitePath  string `toml:"sqlite_path"`
	PostgresDSN string `toml:"postgres_dsn"`
	S3          S3     `toml:"s3"`
}

type S3 struct {
	Bucket    string `toml:"bucket"`
	Key       string `toml:"key"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	PathStyle bool   `toml:"path_style"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	App    string `toml:"app"`
}

type HTTP struct {
	Swagger bool `toml:"swagger"`
	Metrics bool `toml:"metrics"`
}

func Default() Config {
	return Config{
		Port: DefaultPort,
		Store: Store{
			Driver:   DriverFile,
			DataFile: DefaultDataFile,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
			App:    "zookeepr-api",
		},
		HTTP: HTTP{
			Swagger: true,
			Metrics: true,
		},
	}
}

// LoadFile aplica el TOML de path encima de cfg; los campos ausentes no se tocan.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(ErrConfigNotFound, "read config", goerr.V("config_path", path))
		}
		return goerr.Wrap(err, "read config", goerr.V("config_path", path))
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "parse config", goerr.V("config_path", path), goerr.V("cause", err.Error()))
	}
	return nil
}

func (c Config) Validate() error {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		return goerr.Wrap(ErrInvalidConfig, "port is required")
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return goerr.Wrap(ErrInvalidConfig, "port must be a number between 0 and 65535", goerr.V("port", port))
	}

	switch c.Store.Driver {
	case DriverFile, DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return goerr.Wrap(ErrInvalidConfig, "sqlite driver requires sqlite_path")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Store.PostgresDSN) == "" {
			return goerr.Wrap(ErrInvalidConfig, "postgres driver requires postgres_dsn")
		}
	case DriverS3:
		if strings.TrimSpace(c.Store.S3.Bucket) == "" {
			return goerr.Wrap(ErrInvalidConfig, "s3 driver requires a bucket")
		}
	default:
		return goerr.Wrap(ErrInvalidConfig, "unknown store driver", goerr.V("driver", c.Store.Driver))
	}
	return nil
}

// Addr es la dirección de escucha (":" + puerto).
func (c Config) Addr() string {
	return ":" + strings.TrimSpace(c.Port)
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	})
}

// LogFields resume la configuración para el log de arranque (sin el DSN completo).
func (c Config) LogFields() map[string]any {
	return map[string]any{
		"port":         c.Port,
		"store_driver": c.Store.Driver,
		"swagger":      c.HTTP.Swagger,
		"metrics":      c.HTTP.Metrics,
		"log_level":    c.Log.Level,
		"dsn_len":      len(c.Store.PostgresDSN),
	}
}
