package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"zookeepr-api/internal/adapters/storage/sqlite"
	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/gt"
)

func TestAnimalsRepo_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "zoo.db")

	repo, err := sqlite.Open(ctx, path)
	gt.NoError(t, err).Required()

	empty, err := repo.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, empty).Length(0)

	items := []animals.Animal{
		{ID: "0", Name: "Erica", Species: "gorilla", Diet: "omnivore", PersonalityTraits: []string{"quirky", "rash"}},
		{ID: "1", Name: "Noel", Species: "bear", Diet: "carnivore", PersonalityTraits: []string{"impish"}},
	}
	gt.NoError(t, repo.Save(ctx, items[:1])).Required()
	gt.NoError(t, repo.Save(ctx, items)).Required()
	gt.NoError(t, repo.Close()).Required()

	reopened, err := sqlite.Open(ctx, path)
	gt.NoError(t, err).Required()
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(items)
}
