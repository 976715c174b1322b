package animals

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
)

// Candidate es el cuerpo recibido en un POST, sin tipar.
// Solo se convierte en Animal después de pasar Validate.
type Candidate map[string]any

const (
	fieldID                = "id"
	fieldName              = "name"
	fieldSpecies           = "species"
	fieldDiet              = "diet"
	fieldPersonalityTraits = "personalityTraits"
)

// DecodeCandidate lee un cuerpo JSON. Un JSON válido que no es objeto
// produce un candidato vacío (y por lo tanto inválido), no un error.
func DecodeCandidate(body []byte) (Candidate, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&raw); err != nil {
		return nil, goerr.Wrap(err, "decode animal body")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Candidate{}, nil
	}
	return Candidate(obj), nil
}

// CandidateFromForm arma un candidato desde un formulario urlencoded.
// Una clave con un solo valor queda como string; repetida o con corchetes
// ("personalityTraits[]") queda como lista. Así un único personalityTraits=x
// o un name repetido no pasan Validate.
func CandidateFromForm(form url.Values) Candidate {
	c := Candidate{}
	for _, k := range []string{fieldName, fieldSpecies, fieldDiet, fieldPersonalityTraits} {
		if v, ok := formValue(form, k); ok {
			c[k] = v
		}
	}
	return c
}

func formValue(form url.Values, key string) (any, bool) {
	plain := form[key]
	bracketed, hasBracketed := form[key+"[]"]
	if !hasBracketed && len(plain) == 1 {
		return plain[0], true
	}
	if !hasBracketed && len(plain) == 0 {
		return nil, false
	}
	list := make([]any, 0, len(plain)+len(bracketed))
	for _, v := range plain {
		list = append(list, v)
	}
	for _, v := range bracketed {
		list = append(list, v)
	}
	return list, true
}

// Validate comprueba la forma del candidato y devuelve el registro tipado.
// name, species y diet deben ser strings no vacíos; personalityTraits debe ser una lista de strings.
func Validate(c Candidate) (Animal, error) {
	name, ok := nonEmptyString(c[fieldName])
	if !ok {
		return Animal{}, goerr.Wrap(ErrInvalidAnimal, "name", goerr.V("field", fieldName))
	}
	species, ok := nonEmptyString(c[fieldSpecies])
	if !ok {
		return Animal{}, goerr.Wrap(ErrInvalidAnimal, "species", goerr.V("field", fieldSpecies))
	}
	diet, ok := nonEmptyString(c[fieldDiet])
	if !ok {
		return Animal{}, goerr.Wrap(ErrInvalidAnimal, "diet", goerr.V("field", fieldDiet))
	}

	rawTraits, ok := c[fieldPersonalityTraits].([]any)
	if !ok {
		return Animal{}, goerr.Wrap(ErrInvalidAnimal, "personalityTraits", goerr.V("field", fieldPersonalityTraits))
	}
	traits := make([]string, 0, len(rawTraits))
	for i, t := range rawTraits {
		s, ok := t.(string)
		if !ok {
			return Animal{}, goerr.Wrap(ErrInvalidAnimal, "personalityTraits element",
				goerr.V("field", fieldPersonalityTraits), goerr.V("index", i))
		}
		traits = append(traits, s)
	}

	id, _ := c[fieldID].(string)

	return Animal{
		ID:                id,
		Name:              name,
		Species:           species,
		Diet:              diet,
		PersonalityTraits: traits,
	}, nil
}

// IsValid es la versión booleana de Validate.
func IsValid(c Candidate) bool {
	_, err := Validate(c)
	return err == nil
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
