package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/nubz/gds-validation/pkg/formhttp"
	"github.com/nubz/gds-validation/pkg/httpserver"
	"github.com/nubz/gds-validation/pkg/logger"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the schema's pages over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address; defaults to GDS_HTTP_ADDR",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, c *cli.Command) error {
	svc, err := loadService(c)
	if err != nil {
		return err
	}
	log := newLogger(c, svc)

	s, err := loadSchema(svc, time.Now)
	if err != nil {
		return err
	}
	e, err := newEngine(ctx, svc, log, time.Now)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "schema loaded",
		logger.Component("gdsvalidate"),
		logger.Language(svc.Lang),
		slog.String("schema", svc.Schema),
		slog.Int("pages", len(s.Pages)),
	)

	h := formhttp.New(e, s, formhttp.WithLogger(log), formhttp.WithService(svc))
	return httpserver.FromService(svc, httpserver.WithLogger(log)).Run(ctx, h.Router())
}
