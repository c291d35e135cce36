package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nubz/gds-validation/pkg/schema"
)

func definitionCommand() *cli.Command {
	return &cli.Command{
		Name:  "definition-schema",
		Usage: "print the JSON Schema that page definition files must satisfy",
		Action: func(_ context.Context, c *cli.Command) error {
			_, err := c.Root().Writer.Write(schema.DefinitionSchema())
			return err
		},
	}
}
