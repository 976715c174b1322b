package memory_test

import (
	"context"
	"testing"

	"zookeepr-api/internal/adapters/storage/memory"
	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/gt"
)

func TestAnimalsRepo_CopiesOnSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnimalsRepo()

	items := []animals.Animal{{ID: "0", Name: "Rex", Species: "dog", Diet: "omnivore", PersonalityTraits: []string{"Loyal"}}}
	gt.NoError(t, repo.Save(ctx, items)).Required()

	items[0].PersonalityTraits[0] = "changed"

	got, err := repo.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, got[0].PersonalityTraits[0]).Equal("Loyal")
	gt.Value(t, repo.Saves()).Equal(1)
}

func TestAnimalsRepo_EmptyTraitsStayNonNil(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnimalsRepo(animals.Animal{ID: "0", Name: "Rex", Species: "dog", Diet: "omnivore", PersonalityTraits: []string{}})

	got, err := repo.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, got).Length(1).Required()
	gt.Value(t, got[0].PersonalityTraits != nil).Equal(true)
	gt.Array(t, got[0].PersonalityTraits).Length(0)
}
