package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	gdsvalidation "github.com/nubz/gds-validation"
	"github.com/nubz/gds-validation/pkg/config"
	"github.com/nubz/gds-validation/pkg/i18n"
	"github.com/nubz/gds-validation/pkg/logger"
	"github.com/nubz/gds-validation/pkg/requestid"
	"github.com/nubz/gds-validation/pkg/schema"
)

var errNoSchema = errors.New("no schema given: use --schema or GDS_SCHEMA")

// loadService reads GDS_* settings and applies the command line flags over
// them.
func loadService(c *cli.Command) (config.Service, error) {
	svc, err := config.LoadService()
	if err != nil {
		return config.Service{}, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"schema", &svc.Schema},
		{"lang", &svc.Lang},
		{"messages", &svc.Messages},
		{"env", &svc.Env},
		{"log-level", &svc.LogLevel},
		{"addr", &svc.HTTPAddr},
	}
	for _, o := range overrides {
		if c.IsSet(o.flag) {
			*o.dst = c.String(o.flag)
		}
	}
	return svc, svc.Validate()
}

func newLogger(c *cli.Command, svc config.Service) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(svc.Env, c.Root().Name),
		logger.WithLevelName(svc.LogLevel),
		logger.WithOutput(c.Root().ErrWriter),
		logger.WithContextExtractors(requestid.LoggerExtractor),
	)
}

// newEngine builds an engine whose catalogue is the built-in messages with
// svc.Messages layered on top.
func newEngine(ctx context.Context, svc config.Service, log *slog.Logger, now func() time.Time) (*gdsvalidation.Engine, error) {
	opts := []gdsvalidation.Option{
		gdsvalidation.WithLanguage(svc.Lang),
		gdsvalidation.WithLogger(log),
		gdsvalidation.WithClock(now),
	}

	if svc.Messages != "" {
		tr, err := i18n.NewTranslator(ctx,
			i18n.NewLayeredAdapter(
				gdsvalidation.BuiltinMessages(),
				i18n.NewFSAdapter(i18n.NewYAMLParser(), os.DirFS(svc.Messages), "."),
			),
			i18n.WithDefaultLanguage(i18n.DefaultLanguage),
			i18n.WithLogger(log),
		)
		if err != nil {
			return nil, fmt.Errorf("load messages from %s: %w", svc.Messages, err)
		}
		opts = append(opts, gdsvalidation.WithTranslator(tr))
	}

	return gdsvalidation.New(opts...)
}

func loadSchema(svc config.Service, now func() time.Time) (gdsvalidation.Schema, error) {
	if svc.Schema == "" {
		return gdsvalidation.Schema{}, errNoSchema
	}
	l, err := schema.NewLoader(schema.WithClock(now))
	if err != nil {
		return gdsvalidation.Schema{}, err
	}
	return l.LoadFile(svc.Schema)
}

// clock returns a fixed "today" when day is set, otherwise the system clock.
func clock(day string) (func() time.Time, error) {
	if day == "" {
		return time.Now, nil
	}
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return nil, fmt.Errorf("invalid --today %q: %w", day, err)
	}
	return func() time.Time { return t }, nil
}
