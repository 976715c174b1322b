package animals

// Animal es el registro de un animal del zoológico.
// El ID lo asigna el servidor al crear: la longitud de la colección antes de insertar.
type Animal struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`
}

// HasTrait responde si el animal tiene exactamente ese rasgo.
func (a Animal) HasTrait(trait string) bool {
	for _, t := range a.PersonalityTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// clone evita compartir el slice de rasgos entre la colección y quien llama.
// La copia nunca es nil: sin rasgos se serializa como [] y no como null.
func (a Animal) clone() Animal {
	out := a
	out.PersonalityTraits = append(make([]string, 0, len(a.PersonalityTraits)), a.PersonalityTraits...)
	return out
}

func cloneAll(in []Animal) []Animal {
	out := make([]Animal, 0, len(in))
	for _, a := range in {
		out = append(out, a.clone())
	}
	return out
}
