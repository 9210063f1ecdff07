package main

import (
	"context"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nexus-data-service/internal/cli"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
)

type siteSnapshot struct {
	Clubs    []clubs.Club       `json:"clubs"`
	News     []news.Item        `json:"news"`
	Features []features.Feature `json:"features"`
}

type dumpCommand struct {
	c *flaggy.Subcommand
}

func newDumpCommand() *dumpCommand {
	dc := &dumpCommand{c: flaggy.NewSubcommand("dump")}
	dc.c.Description = "Fetch clubs, news and features in one document"
	return dc
}

func (dc *dumpCommand) Flaggy() *flaggy.Subcommand { return dc.c }

// Run loads the three collections concurrently; the first failure cancels the rest.
func (dc *dumpCommand) Run(ctx context.Context, env *cli.Env) error {
	var snap siteSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Clubs, err = env.Backend.Clubs().List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.News, err = env.Backend.News().List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Features, err = env.Backend.Features().List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return cli.WriteJSON(env.Out, snap)
}
