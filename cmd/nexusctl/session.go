package main

import (
	"context"
	"fmt"

	"github.com/integrii/flaggy"

	"github.com/preston-bernstein/nexus-data-service/internal/cli"
)

type loginCommand struct {
	c        *flaggy.Subcommand
	password string
}

func newLoginCommand() *loginCommand {
	lc := &loginCommand{c: flaggy.NewSubcommand("login")}
	lc.c.Description = "Exchange the admin password for a session token"
	lc.c.AddPositionalValue(&lc.password, "password", 1, true, "Admin password")
	return lc
}

func (lc *loginCommand) Flaggy() *flaggy.Subcommand { return lc.c }

// Run fails on a rejected password so scripts see a non-zero exit.
func (lc *loginCommand) Run(ctx context.Context, env *cli.Env) error {
	resp, err := env.Backend.Auth().Login(ctx, lc.password)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("login rejected: %s", resp.Error)
	}
	_, err = fmt.Fprintln(env.Out, "logged in")
	return err
}

type logoutCommand struct {
	c *flaggy.Subcommand
}

func newLogoutCommand() *logoutCommand {
	lc := &logoutCommand{c: flaggy.NewSubcommand("logout")}
	lc.c.Description = "Forget the stored session token"
	return lc
}

func (lc *logoutCommand) Flaggy() *flaggy.Subcommand { return lc.c }

func (lc *logoutCommand) Run(ctx context.Context, env *cli.Env) error {
	if err := env.Backend.Auth().Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(env.Out, "logged out")
	return err
}
