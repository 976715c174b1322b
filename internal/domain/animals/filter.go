package animals

// Query son los parámetros de búsqueda tal como llegan en la URL
// (compatible con url.Values). Cada atributo puede traer uno o varios valores.
type Query map[string][]string

const (
	QueryPersonalityTraits = "personalityTraits"
	QueryDiet              = "diet"
	QuerySpecies           = "species"
	QueryName              = "name"
)

// traits junta "personalityTraits" y la forma con corchetes "personalityTraits[]".
func (q Query) traits() []string {
	out := make([]string, 0, len(q[QueryPersonalityTraits])+len(q[QueryPersonalityTraits+"[]"]))
	out = append(out, q[QueryPersonalityTraits]...)
	out = append(out, q[QueryPersonalityTraits+"[]"]...)
	return out
}

// scalar devuelve los valores de un atributo escalar y si llegaron como lista:
// repetidos o con la forma "diet[]", aunque sea uno solo.
func (q Query) scalar(key string) ([]string, bool) {
	bracketed, ok := q[key+"[]"]
	values := append(append([]string{}, q[key]...), bracketed...)
	return values, ok || len(values) > 1
}

// present replica "viene y no está vacío": un único valor vacío cuenta como ausente.
func present(values []string) bool {
	switch len(values) {
	case 0:
		return false
	case 1:
		return values[0] != ""
	default:
		return true
	}
}

// FilterByQuery devuelve la subsecuencia de animals que cumple todos los predicados de q.
// Orden fijo: rasgos, dieta, especie, nombre. Los atributos desconocidos se ignoran.
// Nunca modifica animals.
func FilterByQuery(q Query, animals []Animal) []Animal {
	results := make([]Animal, len(animals))
	copy(results, animals)

	if traits := q.traits(); present(traits) {
		// AND: cada pasada deja solo los que tienen ese rasgo.
		for _, trait := range traits {
			results = keep(results, func(a Animal) bool { return a.HasTrait(trait) })
		}
	}

	results = filterField(results, q, QueryDiet, func(a Animal) string { return a.Diet })
	results = filterField(results, q, QuerySpecies, func(a Animal) string { return a.Species })
	results = filterField(results, q, QueryName, func(a Animal) string { return a.Name })

	return results
}

// filterField aplica igualdad exacta. Si el campo llegó como lista
// ningún registro coincide (una lista nunca es igual a un string).
func filterField(in []Animal, q Query, key string, field func(Animal) string) []Animal {
	values, list := q.scalar(key)
	if list {
		return []Animal{}
	}
	if !present(values) {
		return in
	}
	want := values[0]
	return keep(in, func(a Animal) bool { return field(a) == want })
}

func keep(in []Animal, pred func(Animal) bool) []Animal {
	out := make([]Animal, 0, len(in))
	for _, a := range in {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// FindByID devuelve el primer animal con ese id.
func FindByID(id string, animals []Animal) (Animal, bool) {
	for _, a := range animals {
		if a.ID == id {
			return a, true
		}
	}
	return Animal{}, false
}
