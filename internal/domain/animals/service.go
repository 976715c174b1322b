package animals

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Service es dueño de la colección en memoria y de su snapshot durable.
// Toda mutación pasa por Create.
type Service struct {
	mu      sync.RWMutex
	animals []Animal
	repo    Repository
	bus     *Bus
	now     func() time.Time
}

type Option func(*Service)

// WithBus publica EventCreated en b después de cada alta.
func WithBus(b *Bus) Option {
	return func(s *Service) { s.bus = b }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		animals: []Animal{},
		repo:    repo,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load siembra la colección desde el repositorio. Se llama una vez al arrancar.
func (s *Service) Load(ctx context.Context) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return goerr.Wrap(err, "load animals")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = cloneAll(items)
	return nil
}

// List aplica FilterByQuery sobre toda la colección.
func (s *Service) List(ctx context.Context, q Query) ([]Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(FilterByQuery(q, s.animals)), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := FindByID(id, s.animals)
	if !ok {
		return Animal{}, goerr.Wrap(ErrNotFound, "get animal", goerr.V("id", id))
	}
	return a.clone(), nil
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.animals)
}

// Create asigna el id provisional (longitud actual), valida, agrega y persiste
// la colección completa antes de responder. Si el snapshot falla, el alta se deshace.
func (s *Service) Create(ctx context.Context, c Candidate) (Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil {
		c = Candidate{}
	}
	c[fieldID] = strconv.Itoa(len(s.animals))

	a, err := Validate(c)
	if err != nil {
		return Animal{}, err
	}

	prev := s.animals
	next := make([]Animal, 0, len(prev)+1)
	next = append(next, prev...)
	next = append(next, a)

	if err := s.repo.Save(ctx, next); err != nil {
		return Animal{}, goerr.Wrap(err, "persist animals snapshot", goerr.V("id", a.ID))
	}
	s.animals = next

	s.bus.publish(Event{
		Type:   EventCreated,
		Animal: a.clone(),
		Total:  len(next),
		At:     s.now(),
	})

	return a.clone(), nil
}

// IsInvalid y IsNotFound evitan que los handlers dependan de goerr.
func IsInvalid(err error) bool  { return errors.Is(err, ErrInvalidAnimal) }
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
