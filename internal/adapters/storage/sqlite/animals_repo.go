// Package sqlite persiste el snapshot en una base SQLite local (driver puro Go).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"
)

const (
	DefaultPath  = "data/animals.db"
	snapshotName = "animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y prepara la tabla snapshots.
func Open(ctx context.Context, path string) (*AnimalsRepo, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, goerr.Wrap(err, "create sqlite dir", goerr.V("path", path))
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "open sqlite", goerr.V("path", path))
	}
	// SQLite serializa escrituras; una conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		name    TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "create snapshots table")
	}
	return &AnimalsRepo{db: db}, nil
}

func (r *AnimalsRepo) Close() error { return r.db.Close() }

func (r *AnimalsRepo) Load(ctx context.Context) ([]animals.Animal, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE name = ?`, snapshotName).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []animals.Animal{}, nil
		}
		return nil, goerr.Wrap(err, "select animals snapshot")
	}
	return animals.UnmarshalSnapshot(payload)
}

func (r *AnimalsRepo) Save(ctx context.Context, items []animals.Animal) error {
	payload, err := animals.MarshalSnapshot(items)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO snapshots (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`, snapshotName, payload); err != nil {
		return goerr.Wrap(err, "upsert animals snapshot", goerr.V("count", len(items)))
	}
	return nil
}
