package main

import (
	"context"

	"github.com/integrii/flaggy"

	"github.com/preston-bernstein/nexus-data-service/internal/cli"
)

type featuresCommand struct {
	c    *flaggy.Subcommand
	list *flaggy.Subcommand
}

func newFeaturesCommand() *featuresCommand {
	fc := &featuresCommand{
		c:    flaggy.NewSubcommand("features"),
		list: flaggy.NewSubcommand("list"),
	}
	fc.c.Description = "Landing-page pillars"
	fc.list.Description = "List every feature"
	fc.c.AttachSubcommand(fc.list, 1)
	return fc
}

func (fc *featuresCommand) Flaggy() *flaggy.Subcommand { return fc.c }

func (fc *featuresCommand) Run(ctx context.Context, env *cli.Env) error {
	items, err := env.Backend.Features().List(ctx)
	if err != nil {
		return err
	}
	return cli.WriteJSON(env.Out, items)
}
