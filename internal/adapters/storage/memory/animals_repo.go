package memory

import (
	"context"
	"sync"

	"zookeepr-api/internal/domain/animals"
)

// AnimalsRepo guarda el snapshot en memoria; no sobrevive al proceso.
type AnimalsRepo struct {
	mu    sync.RWMutex
	items []animals.Animal
	saves int
}

func NewAnimalsRepo(seed ...animals.Animal) *AnimalsRepo {
	return &AnimalsRepo{items: copyAnimals(seed)}
}

func (r *AnimalsRepo) Load(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyAnimals(r.items), nil
}

func (r *AnimalsRepo) Save(ctx context.Context, items []animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = copyAnimals(items)
	r.saves++
	return nil
}

// Saves cuenta cuántas veces se reescribió el snapshot.
func (r *AnimalsRepo) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

func copyAnimals(in []animals.Animal) []animals.Animal {
	out := make([]animals.Animal, 0, len(in))
	for _, a := range in {
		a.PersonalityTraits = append(make([]string, 0, len(a.PersonalityTraits)), a.PersonalityTraits...)
		out = append(out, a)
	}
	return out
}
