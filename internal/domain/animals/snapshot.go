package animals

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// MarshalSnapshot serializa la colección con indentación de 2 espacios.
// Todos los backends guardan exactamente este documento.
func MarshalSnapshot(animals []Animal) ([]byte, error) {
	if animals == nil {
		animals = []Animal{}
	}
	b, err := json.MarshalIndent(Snapshot{Animals: animals}, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "marshal snapshot")
	}
	return b, nil
}

// UnmarshalSnapshot acepta un documento vacío como colección vacía.
func UnmarshalSnapshot(b []byte) ([]Animal, error) {
	if len(b) == 0 {
		return []Animal{}, nil
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, goerr.Wrap(err, "unmarshal snapshot")
	}
	if s.Animals == nil {
		return []Animal{}, nil
	}
	for i := range s.Animals {
		if s.Animals[i].PersonalityTraits == nil {
			s.Animals[i].PersonalityTraits = []string{}
		}
	}
	return s.Animals, nil
}
