package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/nubz/gds-validation/pkg/schema"
)

func lintCommand() *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: "report page definitions that load but cannot work as intended",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print issues as a JSON array",
			},
		},
		Action: runLint,
	}
}

func runLint(_ context.Context, c *cli.Command) error {
	svc, err := loadService(c)
	if err != nil {
		return err
	}
	s, err := loadSchema(svc, time.Now)
	if err != nil {
		return err
	}

	issues := schema.Lint(s)
	out := c.Root().Writer
	if c.Bool("json") {
		if issues == nil {
			issues = []schema.Issue{}
		}
		if err := json.NewEncoder(out).Encode(issues); err != nil {
			return err
		}
	} else {
		for _, issue := range issues {
			fmt.Fprintln(out, issue)
		}
		if len(issues) == 0 {
			fmt.Fprintf(out, "%s: %d pages, no issues\n", svc.Schema, len(s.Pages))
		}
	}

	if schema.HasErrors(issues) {
		return errLintFailed
	}
	return nil
}
