package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	errPayloadInvalid = errors.New("payload has errors")
	errLintFailed     = errors.New("schema has lint errors")
)

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errPayloadInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "gdsvalidate",
		Usage:     "validate GOV.UK style form answers against page definitions",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schema",
				Usage: "page definition file (.yaml, .yml or .json); defaults to GDS_SCHEMA",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "message language; defaults to GDS_LANG",
			},
			&cli.StringFlag{
				Name:  "messages",
				Usage: "directory of YAML message catalogues layered over the built-in messages",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "development, staging or production; defaults to GDS_ENV",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error; defaults to GDS_LOG_LEVEL",
			},
		},
		Commands: []*cli.Command{
			checkCommand(),
			lintCommand(),
			serveCommand(),
			definitionCommand(),
		},
	}
}
