package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	gdsvalidation "github.com/nubz/gds-validation"
	"github.com/nubz/gds-validation/pkg/schema"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a payload file and print the report as JSON",
		ArgsUsage: "PAYLOAD",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "page",
				Usage: "page to validate; all pages when empty",
			},
			&cli.StringFlag{
				Name:  "today",
				Usage: "date to treat as today (YYYY-MM-DD)",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("check takes one payload file, or - for stdin")
	}

	svc, err := loadService(c)
	if err != nil {
		return err
	}
	now, err := clock(c.String("today"))
	if err != nil {
		return err
	}
	log := newLogger(c, svc)

	s, err := loadSchema(svc, now)
	if err != nil {
		return err
	}
	e, err := newEngine(ctx, svc, log, now)
	if err != nil {
		return err
	}
	payload, err := readPayload(c.Args().First())
	if err != nil {
		return err
	}

	pages := s.Pages
	if key := c.String("page"); key != "" {
		page, err := s.Page(key)
		if err != nil {
			return err
		}
		pages = []gdsvalidation.Page{page}
	}

	reports := make(map[string]*gdsvalidation.Report, len(pages))
	invalid := false
	for _, page := range pages {
		report, err := e.Validate(ctx, payload, page)
		if err != nil {
			return err
		}
		reports[page.Key] = report
		invalid = invalid || report.HasErrors
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if len(pages) == 1 {
		err = enc.Encode(reports[pages[0].Key])
	} else {
		err = enc.Encode(reports)
	}
	if err != nil {
		return err
	}

	if invalid {
		return errPayloadInvalid
	}
	return nil
}

// readPayload decodes a JSON or YAML object of answers. "-" reads JSON from
// stdin.
func readPayload(path string) (gdsvalidation.Payload, error) {
	var (
		data   []byte
		err    error
		format = schema.FormatJSON
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		if format, err = schema.FormatFromPath(path); err != nil {
			return nil, err
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var payload gdsvalidation.Payload
	if format == schema.FormatYAML {
		err = yaml.Unmarshal(data, &payload)
	} else {
		err = json.Unmarshal(data, &payload)
	}
	if err != nil {
		return nil, fmt.Errorf("decode payload %s: %w", path, err)
	}
	if payload == nil {
		payload = gdsvalidation.Payload{}
	}
	return payload, nil
}
