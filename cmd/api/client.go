package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"zookeepr-api/internal/client"
	"zookeepr-api/internal/domain/animals"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Usage:   "Base URL of a running zookeepr-api",
			Value:   client.DefaultServer,
			Sources: cli.EnvVars("ANIMALS_SERVER"),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout",
			Value: 10 * time.Second,
		},
	}
}

func newClient(c *cli.Command) (*client.Client, error) {
	return client.New(c.String("server"), c.Duration("timeout"))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List animals, optionally filtered",
		Flags: append(serverFlags(),
			&cli.StringSliceFlag{Name: "trait", Usage: "Required personality trait (repeatable, all must match)"},
			&cli.StringFlag{Name: "diet", Usage: "Exact diet"},
			&cli.StringFlag{Name: "species", Usage: "Exact species"},
			&cli.StringFlag{Name: "name", Usage: "Exact name"},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			cl, err := newClient(c)
			if err != nil {
				return err
			}

			q := animals.Query{}
			if traits := c.StringSlice("trait"); len(traits) > 0 {
				q[animals.QueryPersonalityTraits] = traits
			}
			for _, k := range []string{animals.QueryDiet, animals.QuerySpecies, animals.QueryName} {
				if v := c.String(k); v != "" {
					q[k] = []string{v}
				}
			}

			items, err := cl.List(ctx, q)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
}

func cmdGet() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get an animal by id",
		ArgsUsage: "<id>",
		Flags:     serverFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("id argument is required")
			}
			cl, err := newClient(c)
			if err != nil {
				return err
			}
			a, err := cl.Get(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(a)
		},
	}
}

func cmdCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an animal",
		Flags: append(serverFlags(),
			&cli.StringFlag{Name: "name", Usage: "Animal name", Required: true},
			&cli.StringFlag{Name: "species", Usage: "Species", Required: true},
			&cli.StringFlag{Name: "diet", Usage: "Diet (e.g. omnivore)", Required: true},
			&cli.StringSliceFlag{Name: "trait", Usage: "Personality trait (repeatable)"},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			cl, err := newClient(c)
			if err != nil {
				return err
			}
			a, err := cl.Create(ctx, client.CreateRequest{
				Name:              c.String("name"),
				Species:           c.String("species"),
				Diet:              c.String("diet"),
				PersonalityTraits: c.StringSlice("trait"),
			})
			if err != nil {
				return err
			}
			return printJSON(a)
		},
	}
}
