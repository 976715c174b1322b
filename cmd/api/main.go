// @title zookeepr API
// @version 1.0
// @description Consulta y alta de animales del zoológico.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"

	"zookeepr-api/internal/config"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "zookeepr-api",
		Usage:   "HTTP API de animales del zoológico",
		Version: version,
		// sin subcomando => serve
		Flags:  config.Flags(),
		Action: serveAction,
		Commands: []*cli.Command{
			cmdServe(),
			cmdList(),
			cmdGet(),
			cmdCreate(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
