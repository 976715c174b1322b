// Package client habla con un servidor de animales en ejecución.
package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"zookeepr-api/internal/domain/animals"
	"zookeepr-api/internal/platform/httpclient"

	"github.com/m-mizutani/goerr/v2"
)

const DefaultServer = "http://localhost:3001"

var ErrNotFound = goerr.New("animal not found")

type Client struct {
	http *httpclient.Client
}

func New(server string, timeout time.Duration) (*Client, error) {
	c, err := httpclient.New(server, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

type CreateRequest struct {
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`
}

func (c *Client) List(ctx context.Context, q animals.Query) ([]animals.Animal, error) {
	var out []animals.Animal
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/animals", url.Values(q), nil, &out); err != nil {
		return nil, goerr.Wrap(err, "list animals")
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (animals.Animal, error) {
	var out animals.Animal
	err := c.http.DoJSON(ctx, http.MethodGet, "/api/animals/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusNotFound {
			return animals.Animal{}, goerr.Wrap(ErrNotFound, "get animal", goerr.V("id", id))
		}
		return animals.Animal{}, goerr.Wrap(err, "get animal", goerr.V("id", id))
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, in CreateRequest) (animals.Animal, error) {
	if in.PersonalityTraits == nil {
		in.PersonalityTraits = []string{}
	}
	var out animals.Animal
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/animals", nil, in, &out); err != nil {
		return animals.Animal{}, goerr.Wrap(err, "create animal")
	}
	return out, nil
}
