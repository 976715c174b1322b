package animals

import "context"

// Repository es el almacenamiento durable de la colección completa (snapshot).
// Save reemplaza todo lo anterior; no hay escrituras parciales.
type Repository interface {
	Load(ctx context.Context) ([]Animal, error)
	Save(ctx context.Context, animals []Animal) error
}

// Snapshot es el documento persistido: {"animals": [...]}.
type Snapshot struct {
	Animals []Animal `json:"animals"`
}
