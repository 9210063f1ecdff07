package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/integrii/flaggy"

	"github.com/preston-bernstein/nexus-data-service/internal/cli"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
)

type clubsCommand struct {
	c      *flaggy.Subcommand
	list   *flaggy.Subcommand
	get    *flaggy.Subcommand
	update *flaggy.Subcommand

	id          string
	name        string
	tagline     string
	description string
	icon        string
	gradient    string
	accent      string
	features    []string
	patchJSON   string
}

func newClubsCommand() *clubsCommand {
	cc := &clubsCommand{
		c:      flaggy.NewSubcommand("clubs"),
		list:   flaggy.NewSubcommand("list"),
		get:    flaggy.NewSubcommand("get"),
		update: flaggy.NewSubcommand("update"),
	}
	cc.c.Description = "Club profiles"
	cc.list.Description = "List every club"
	cc.get.Description = "Show one club"
	cc.update.Description = "Merge fields into a club"

	cc.get.AddPositionalValue(&cc.id, "id", 1, true, "Club id")
	cc.update.AddPositionalValue(&cc.id, "id", 1, true, "Club id")
	cc.update.String(&cc.name, "", "name", "New name")
	cc.update.String(&cc.tagline, "", "tagline", "New tagline")
	cc.update.String(&cc.description, "", "description", "New description")
	cc.update.String(&cc.icon, "", "icon", "New icon name")
	cc.update.String(&cc.gradient, "", "gradient", "New gradient classes")
	cc.update.String(&cc.accent, "", "accent", "New accent colour")
	cc.update.StringSlice(&cc.features, "", "feature", "Replace the feature list (repeatable)")
	cc.update.String(&cc.patchJSON, "", "json", "Raw JSON patch; flags are applied on top")

	cc.c.AttachSubcommand(cc.list, 1)
	cc.c.AttachSubcommand(cc.get, 1)
	cc.c.AttachSubcommand(cc.update, 1)
	return cc
}

func (cc *clubsCommand) Flaggy() *flaggy.Subcommand { return cc.c }

func (cc *clubsCommand) Run(ctx context.Context, env *cli.Env) error {
	svc := env.Backend.Clubs()
	switch {
	case cc.get.Used:
		club, ok, err := svc.Get(ctx, cc.id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("club %q not found", cc.id)
		}
		return cli.WriteJSON(env.Out, club)
	case cc.update.Used:
		patch, err := cc.buildPatch()
		if err != nil {
			return err
		}
		club, err := svc.Update(ctx, cc.id, patch)
		if err != nil {
			return err
		}
		return cli.WriteJSON(env.Out, club)
	default:
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		return cli.WriteJSON(env.Out, items)
	}
}

func (cc *clubsCommand) buildPatch() (clubs.Patch, error) {
	var patch clubs.Patch
	if cc.patchJSON != "" {
		if err := json.Unmarshal([]byte(cc.patchJSON), &patch); err != nil {
			return clubs.Patch{}, fmt.Errorf("invalid --json patch: %w", err)
		}
	}
	setIf := func(dst **string, v string) {
		if v != "" {
			*dst = clubs.String(v)
		}
	}
	setIf(&patch.Name, cc.name)
	setIf(&patch.Tagline, cc.tagline)
	setIf(&patch.Description, cc.description)
	setIf(&patch.Icon, cc.icon)
	setIf(&patch.Gradient, cc.gradient)
	setIf(&patch.Accent, cc.accent)
	if len(cc.features) > 0 {
		features := append([]string(nil), cc.features...)
		patch.Features = &features
	}
	return patch, nil
}
