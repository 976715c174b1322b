// Package file persiste la colección como un único archivo JSON que se reescribe entero.
package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/goerr/v2"
)

const DefaultPath = "data/animals.json"

type AnimalsRepo struct {
	path string
}

func NewAnimalsRepo(path string) *AnimalsRepo {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &AnimalsRepo{path: path}
}

func (r *AnimalsRepo) Path() string { return r.path }

// Load devuelve una colección vacía si el archivo todavía no existe.
func (r *AnimalsRepo) Load(ctx context.Context) ([]animals.Animal, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []animals.Animal{}, nil
		}
		return nil, goerr.Wrap(err, "read animals file", goerr.V("path", r.path))
	}
	items, err := animals.UnmarshalSnapshot(b)
	if err != nil {
		return nil, goerr.Wrap(err, "parse animals file", goerr.V("path", r.path))
	}
	return items, nil
}

// Save sobrescribe el archivo completo (sin rename atómico ni journaling).
func (r *AnimalsRepo) Save(ctx context.Context, items []animals.Animal) error {
	b, err := animals.MarshalSnapshot(items)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return goerr.Wrap(err, "create animals dir", goerr.V("dir", dir))
		}
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return goerr.Wrap(err, "write animals file", goerr.V("path", r.path))
	}
	return nil
}
