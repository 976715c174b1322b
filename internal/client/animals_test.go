package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"zookeepr-api/internal/adapters/storage/memory"
	"zookeepr-api/internal/client"
	"zookeepr-api/internal/domain/animals"
	"zookeepr-api/internal/platform/httpclient"
	"zookeepr-api/internal/router"

	"github.com/m-mizutani/gt"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()

	svc := animals.NewService(memory.NewAnimalsRepo(
		animals.Animal{ID: "0", Name: "Sarah", Species: "bear", Diet: "carnivore", PersonalityTraits: []string{"hungry"}},
	))
	gt.NoError(t, svc.Load(context.Background())).Required()

	ts := httptest.NewServer(router.NewRouter(router.Options{Service: svc}))
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, 0)
	gt.NoError(t, err).Required()
	return c
}

func TestClient_CreateListGet(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	created, err := c.Create(ctx, client.CreateRequest{
		Name:              "Rex",
		Species:           "dog",
		Diet:              "omnivore",
		PersonalityTraits: []string{"Loyal"},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, created.ID).Equal("1")

	dogs, err := c.List(ctx, animals.Query{"species": {"dog"}})
	gt.NoError(t, err).Required()
	gt.Array(t, dogs).Length(1)

	got, err := c.Get(ctx, "1")
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal(created)
}

func TestClient_GetMissing(t *testing.T) {
	_, err := newClient(t).Get(context.Background(), "nonexistent-id")
	gt.Error(t, err).Is(client.ErrNotFound)
}

func TestClient_CreateInvalidSurfacesServerMessage(t *testing.T) {
	_, err := newClient(t).Create(context.Background(), client.CreateRequest{Name: "Rex"})

	var he *httpclient.HTTPError
	gt.Bool(t, errors.As(err, &he)).True()
	gt.Value(t, he.StatusCode).Equal(http.StatusBadRequest)
	gt.Value(t, he.Body).Equal("The animal is not properly formatted")
}
