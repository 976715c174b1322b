package config

import (
	"github.com/urfave/cli/v3"
)

const FlagConfig = "config"

// binding conecta un flag con el campo de Config que pisa cuando está seteado.
type binding struct {
	flag  cli.Flag
	apply func(cfg *Config, c *cli.Command)
}

func stringBinding(name, usage, env string, set func(cfg *Config, v string)) binding {
	return binding{
		flag: &cli.StringFlag{
			Name:    name,
			Usage:   usage,
			Sources: cli.EnvVars(env),
		},
		apply: func(cfg *Config, c *cli.Command) { set(cfg, c.String(name)) },
	}
}

func boolBinding(name, usage, env string, set func(cfg *Config, v bool)) binding {
	return binding{
		flag: &cli.BoolFlag{
			Name:    name,
			Usage:   usage,
			Sources: cli.EnvVars(env),
		},
		apply: func(cfg *Config, c *cli.Command) { set(cfg, c.Bool(name)) },
	}
}

func bindings() []binding {
	return []binding{
		stringBinding("port", "HTTP listen port (default 3001)", "PORT",
			func(cfg *Config, v string) { cfg.Port = v }),
		stringBinding("store", "Backing store driver: file, memory, sqlite, postgres, s3", "ANIMALS_STORE",
			func(cfg *Config, v string) { cfg.Store.Driver = v }),
		stringBinding("data-file", "JSON snapshot path for the file driver", "ANIMALS_DATA_FILE",
			func(cfg *Config, v string) { cfg.Store.DataFile = v }),
		stringBinding("sqlite-path", "SQLite database path for the sqlite driver", "ANIMALS_SQLITE_PATH",
			func(cfg *Config, v string) { cfg.Store.SQLitePath = v }),
		stringBinding("postgres-dsn", "Postgres DSN for the postgres driver", "DB_DSN",
			func(cfg *Config, v string) { cfg.Store.PostgresDSN = v }),
		stringBinding("s3-bucket", "Bucket for the s3 driver", "ANIMALS_S3_BUCKET",
			func(cfg *Config, v string) { cfg.Store.S3.Bucket = v }),
		stringBinding("s3-key", "Object key for the s3 driver (default animals.json)", "ANIMALS_S3_KEY",
			func(cfg *Config, v string) { cfg.Store.S3.Key = v }),
		stringBinding("s3-region", "AWS region for the s3 driver", "ANIMALS_S3_REGION",
			func(cfg *Config, v string) { cfg.Store.S3.Region = v }),
		stringBinding("s3-endpoint", "Custom S3 endpoint (MinIO)", "ANIMALS_S3_ENDPOINT",
			func(cfg *Config, v string) { cfg.Store.S3.Endpoint = v }),
		boolBinding("s3-path-style", "Use path-style S3 addressing", "ANIMALS_S3_PATH_STYLE",
			func(cfg *Config, v bool) { cfg.Store.S3.PathStyle = v }),
		stringBinding("log-level", "Log level: debug, info, warn, error", "LOG_LEVEL",
			func(cfg *Config, v string) { cfg.Log.Level = v }),
		stringBinding("log-format", "Log format: text or json", "LOG_FORMAT",
			func(cfg *Config, v string) { cfg.Log.Format = v }),
		boolBinding("swagger", "Serve OpenAPI docs on /swagger/", "ANIMALS_SWAGGER",
			func(cfg *Config, v bool) { cfg.HTTP.Swagger = v }),
		boolBinding("metrics", "Serve Prometheus metrics on /metrics", "ANIMALS_METRICS",
			func(cfg *Config, v bool) { cfg.HTTP.Metrics = v }),
	}
}

// Flags devuelve los flags del servidor, incluido --config.
func Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    FlagConfig,
			Usage:   "Path to a TOML configuration file",
			Sources: cli.EnvVars("ANIMALS_CONFIG"),
		},
	}
	for _, b := range bindings() {
		flags = append(flags, b.flag)
	}
	return flags
}

// FromCommand arma la configuración: defaults, luego el TOML (si hay), luego
// los flags o variables de entorno que estén seteados.
func FromCommand(c *cli.Command) (Config, error) {
	cfg := Default()

	if path := c.String(FlagConfig); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	for _, b := range bindings() {
		if c.IsSet(b.flag.Names()[0]) {
			b.apply(&cfg, c)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
