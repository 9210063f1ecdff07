package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/integrii/flaggy"

	"github.com/preston-bernstein/nexus-data-service/internal/cli"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/timeutil"
)

type newsCommand struct {
	c      *flaggy.Subcommand
	list   *flaggy.Subcommand
	create *flaggy.Subcommand
	remove *flaggy.Subcommand

	id   string
	item news.Item
	cat  string
}

func newNewsCommand() *newsCommand {
	nc := &newsCommand{
		c:      flaggy.NewSubcommand("news"),
		list:   flaggy.NewSubcommand("list"),
		create: flaggy.NewSubcommand("create"),
		remove: flaggy.NewSubcommand("delete"),
	}
	nc.c.Description = "Announcements feed"
	nc.list.Description = "List news, newest first"
	nc.create.Description = "Publish a news item at the top of the feed"
	nc.remove.Description = "Remove a news item"

	nc.create.String(&nc.item.ID, "", "id", "Item id; assigned when empty")
	nc.create.String(&nc.item.Title, "", "title", "Headline (required)")
	nc.create.String(&nc.item.Summary, "", "summary", "Short summary")
	nc.create.String(&nc.item.Date, "", "date", "Display date, e.g. \"Oct 10, 2024\"; defaults to today")
	nc.create.String(&nc.cat, "", "category", "Announcement, Achievement or Opportunity")
	nc.create.String(&nc.item.Author, "", "author", "Author name")
	nc.remove.AddPositionalValue(&nc.id, "id", 1, true, "News id")

	nc.c.AttachSubcommand(nc.list, 1)
	nc.c.AttachSubcommand(nc.create, 1)
	nc.c.AttachSubcommand(nc.remove, 1)
	return nc
}

func (nc *newsCommand) Flaggy() *flaggy.Subcommand { return nc.c }

func (nc *newsCommand) Run(ctx context.Context, env *cli.Env) error {
	svc := env.Backend.News()
	switch {
	case nc.create.Used:
		if nc.item.Title == "" {
			return errors.New("--title is required")
		}
		item := nc.item
		item.Category = news.Category(nc.cat)
		if item.Category != "" && !item.Category.Known() {
			env.Logger.Warn("unknown news category", "category", nc.cat)
		}
		if item.Date != "" {
			if _, err := timeutil.ParseDisplayDate(item.Date); err != nil {
				env.Logger.Warn("date is not in display layout", "date", item.Date, "layout", timeutil.DisplayLayout)
			}
		}
		created, err := svc.Create(ctx, item)
		if err != nil {
			return err
		}
		return cli.WriteJSON(env.Out, created)
	case nc.remove.Used:
		if err := svc.Delete(ctx, nc.id); err != nil {
			return err
		}
		_, err := fmt.Fprintf(env.Out, "deleted %s\n", nc.id)
		return err
	default:
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		return cli.WriteJSON(env.Out, items)
	}
}
