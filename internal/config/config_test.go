package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"zookeepr-api/internal/config"
	"zookeepr-api/internal/platform/logger"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// run ejecuta un comando mínimo con los flags del servidor y devuelve la config resuelta.
func run(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()

	var (
		cfg    config.Config
		cfgErr error
	)
	cmd := &cli.Command{
		Name:  "test",
		Flags: config.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, cfgErr = config.FromCommand(c)
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
	return cfg, cfgErr
}

// unsetEnv borra key durante el test y la restaura al final.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	gt.NoError(t, os.Unsetenv(key)).Required()
}

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoo.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()
	return path
}

func TestDefaults(t *testing.T) {
	unsetEnv(t, "PORT")
	cfg, err := run(t)
	gt.NoError(t, err).Required()

	gt.Value(t, cfg.Port).Equal("3001")
	gt.Value(t, cfg.Addr()).Equal(":3001")
	gt.Value(t, cfg.Store.Driver).Equal(config.DriverFile)
	gt.Value(t, cfg.Store.DataFile).Equal(config.DefaultDataFile)
	gt.Bool(t, cfg.HTTP.Swagger).True()
	gt.Bool(t, cfg.HTTP.Metrics).True()
}

func TestPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "4000")
	cfg, err := run(t)
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.Port).Equal("4000")
}

func TestTOMLThenFlagsPrecedence(t *testing.T) {
	unsetEnv(t, "PORT")
	path := writeTOML(t, `
port = "5000"

[store]
driver = "sqlite"
sqlite_path = "/tmp/zoo.db"

[log]
level = "debug"

[http]
metrics = false
`)

	cfg, err := run(t, "--config", path, "--log-level", "warn")
	gt.NoError(t, err).Required()

	gt.Value(t, cfg.Port).Equal("5000")
	gt.Value(t, cfg.Store.Driver).Equal(config.DriverSQLite)
	gt.Value(t, cfg.Store.SQLitePath).Equal("/tmp/zoo.db")
	gt.Value(t, cfg.Log.Level).Equal("warn")
	gt.Bool(t, cfg.HTTP.Metrics).False()
	gt.Bool(t, cfg.HTTP.Swagger).True()
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(c *config.Config) {}, ok: true},
		{name: "memory", mutate: func(c *config.Config) { c.Store.Driver = config.DriverMemory }, ok: true},
		{name: "empty port", mutate: func(c *config.Config) { c.Port = "" }},
		{name: "bad port", mutate: func(c *config.Config) { c.Port = "http" }},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Store.Driver = "mongo" }},
		{name: "sqlite without path", mutate: func(c *config.Config) { c.Store.Driver = config.DriverSQLite }},
		{name: "postgres without dsn", mutate: func(c *config.Config) { c.Store.Driver = config.DriverPostgres }},
		{name: "s3 without bucket", mutate: func(c *config.Config) { c.Store.Driver = config.DriverS3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err).Is(config.ErrInvalidConfig)
		})
	}
}

func TestOpenRepository_FileAndSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	fileStore := config.Store{Driver: config.DriverFile, DataFile: filepath.Join(dir, "animals.json")}
	repo, closer, err := fileStore.OpenRepository(ctx, logger.Nop())
	gt.NoError(t, err).Required()
	gt.NoError(t, closer())
	items, err := repo.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, items).Length(0)

	sqliteStore := config.Store{Driver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "zoo.db")}
	repo, closer, err = sqliteStore.OpenRepository(ctx, logger.Nop())
	gt.NoError(t, err).Required()
	defer closer()
	items, err = repo.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, items).Length(0)
}
