package animals

import (
	"context"
	"time"

	"github.com/asaidimu/go-events"
	"github.com/m-mizutani/goerr/v2"
)

const EventCreated = "animal.created"

// Event se publica después de que un alta quedó persistida.
type Event struct {
	Type   string
	Animal Animal
	Total  int
	At     time.Time
}

// Bus es el bus tipado de eventos del módulo.
type Bus struct {
	bus *events.TypedEventBus[Event]
}

func NewBus() (*Bus, error) {
	b, err := events.NewTypedEventBus[Event](events.DefaultConfig())
	if err != nil {
		return nil, goerr.Wrap(err, "create animals event bus")
	}
	return &Bus{bus: b}, nil
}

// Subscribe registra fn para el tipo de evento dado y devuelve la función para desuscribir.
func (b *Bus) Subscribe(eventType string, fn func(ctx context.Context, e Event) error) func() {
	if b == nil || b.bus == nil {
		return func() {}
	}
	return b.bus.Subscribe(eventType, fn)
}

func (b *Bus) publish(e Event) {
	if b == nil || b.bus == nil {
		return
	}
	b.bus.Emit(e.Type, e)
}
