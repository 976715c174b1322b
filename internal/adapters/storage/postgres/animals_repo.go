package postgres

import (
	"context"
	"database/sql"
	"errors"

	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/goerr/v2"
)

const snapshotName = "animals"

// AnimalsRepo guarda el documento (tal cual, indentado) {"animals": [...]} en una fila de la tabla snapshots.
type AnimalsRepo struct {
	db *sql.DB
}

// NewAnimalsRepo crea la tabla si no existe.
func NewAnimalsRepo(ctx context.Context, db *sql.DB) (*AnimalsRepo, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, goerr.Wrap(err, "create snapshots table")
	}
	return &AnimalsRepo{db: db}, nil
}

func (r *AnimalsRepo) Load(ctx context.Context) ([]animals.Animal, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `
		SELECT payload FROM snapshots WHERE name = $1
	`, snapshotName).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []animals.Animal{}, nil
		}
		return nil, goerr.Wrap(err, "select animals snapshot")
	}
	return animals.UnmarshalSnapshot([]byte(payload))
}

func (r *AnimalsRepo) Save(ctx context.Context, items []animals.Animal) error {
	payload, err := animals.MarshalSnapshot(items)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, snapshotName, string(payload)); err != nil {
		return goerr.Wrap(err, "upsert animals snapshot", goerr.V("count", len(items)))
	}
	return nil
}
