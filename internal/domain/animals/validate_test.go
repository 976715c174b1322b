package animals_test

import (
	"net/url"
	"testing"

	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/gt"
)

func TestValidate(t *testing.T) {
	valid := func() animals.Candidate {
		return animals.Candidate{
			"name":              "Rex",
			"species":           "dog",
			"diet":              "omnivore",
			"personalityTraits": []any{"Loyal"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c animals.Candidate)
		ok     bool
	}{
		{name: "minimal well-typed candidate", mutate: func(c animals.Candidate) {}, ok: true},
		{name: "empty traits list is fine", mutate: func(c animals.Candidate) { c["personalityTraits"] = []any{} }, ok: true},
		{name: "missing name", mutate: func(c animals.Candidate) { delete(c, "name") }, ok: false},
		{name: "empty name", mutate: func(c animals.Candidate) { c["name"] = "" }, ok: false},
		{name: "numeric species", mutate: func(c animals.Candidate) { c["species"] = float64(3) }, ok: false},
		{name: "missing diet", mutate: func(c animals.Candidate) { delete(c, "diet") }, ok: false},
		{name: "missing traits", mutate: func(c animals.Candidate) { delete(c, "personalityTraits") }, ok: false},
		{name: "traits as string", mutate: func(c animals.Candidate) { c["personalityTraits"] = "Loyal" }, ok: false},
		{name: "traits with non-string element", mutate: func(c animals.Candidate) { c["personalityTraits"] = []any{"Loyal", 1.0} }, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			_, err := animals.Validate(c)
			if tt.ok {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err).Is(animals.ErrInvalidAnimal)
			gt.Bool(t, animals.IsValid(c)).False()
		})
	}
}

func TestValidate_ReturnsTypedRecord(t *testing.T) {
	a, err := animals.Validate(animals.Candidate{
		"id":                "5",
		"name":              "Rex",
		"species":           "dog",
		"diet":              "omnivore",
		"personalityTraits": []any{"Loyal", "Playful"},
		"extra":             true,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, a).Equal(animals.Animal{
		ID:                "5",
		Name:              "Rex",
		Species:           "dog",
		Diet:              "omnivore",
		PersonalityTraits: []string{"Loyal", "Playful"},
	})
}

func TestDecodeCandidate(t *testing.T) {
	c, err := animals.DecodeCandidate([]byte(`{"name":"Rex","species":"dog","diet":"omnivore","personalityTraits":["Loyal"]}`))
	gt.NoError(t, err).Required()
	gt.Bool(t, animals.IsValid(c)).True()

	c, err = animals.DecodeCandidate([]byte(`["not","an","object"]`))
	gt.NoError(t, err).Required()
	gt.Bool(t, animals.IsValid(c)).False()

	_, err = animals.DecodeCandidate([]byte(`{"name":`))
	gt.Error(t, err)
}

func TestCandidateFromForm(t *testing.T) {
	c := animals.CandidateFromForm(url.Values{
		"name":                {"Rex"},
		"species":             {"dog"},
		"diet":                {"omnivore"},
		"personalityTraits":   {"Loyal"},
		"personalityTraits[]": {"Playful"},
	})
	a, err := animals.Validate(c)
	gt.NoError(t, err).Required()
	gt.Array(t, a.PersonalityTraits).Equal([]string{"Loyal", "Playful"})

	missing := animals.CandidateFromForm(url.Values{"name": {"Rex"}, "species": {"dog"}, "diet": {"omnivore"}})
	gt.Bool(t, animals.IsValid(missing)).False()
}

func TestCandidateFromForm_Shapes(t *testing.T) {
	base := func() url.Values {
		return url.Values{"name": {"Rex"}, "species": {"dog"}, "diet": {"omnivore"}}
	}

	tests := []struct {
		name   string
		mutate func(url.Values)
		ok     bool
		traits []string
	}{
		{name: "repeated traits are a list", mutate: func(f url.Values) { f["personalityTraits"] = []string{"Loyal", "Playful"} }, ok: true, traits: []string{"Loyal", "Playful"}},
		{name: "single bracketed trait is a list", mutate: func(f url.Values) { f["personalityTraits[]"] = []string{"Loyal"} }, ok: true, traits: []string{"Loyal"}},
		{name: "single plain trait is a string", mutate: func(f url.Values) { f["personalityTraits"] = []string{"Loyal"} }, ok: false},
		{name: "repeated name is a list", mutate: func(f url.Values) {
			f["name"] = []string{"Rex", "Max"}
			f["personalityTraits[]"] = []string{"Loyal"}
		}, ok: false},
		{name: "bracketed diet is a list", mutate: func(f url.Values) {
			delete(f, "diet")
			f["diet[]"] = []string{"omnivore"}
			f["personalityTraits[]"] = []string{"Loyal"}
		}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base()
			tt.mutate(f)
			a, err := animals.Validate(animals.CandidateFromForm(f))
			if !tt.ok {
				gt.Error(t, err)
				gt.Bool(t, animals.IsInvalid(err)).True()
				return
			}
			gt.NoError(t, err).Required()
			gt.Array(t, a.PersonalityTraits).Equal(tt.traits)
		})
	}
}
