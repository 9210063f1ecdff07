package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/integrii/flaggy"

	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/testutil"
)

type pingCommand struct {
	c    *flaggy.Subcommand
	ran  bool
	name string
}

func newPing() *pingCommand {
	p := &pingCommand{c: flaggy.NewSubcommand("ping")}
	p.c.String(&p.name, "n", "name", "who to ping")
	return p
}

func (p *pingCommand) Flaggy() *flaggy.Subcommand { return p.c }

func (p *pingCommand) Run(ctx context.Context, env *Env) error {
	p.ran = true
	return WriteJSON(env.Out, map[string]string{"pong": p.name, "backend": env.Backend.Name()})
}

func TestExecuteRunsUsedCommand(t *testing.T) {
	var out bytes.Buffer
	ping := newPing()
	var gotOpts GlobalOptions
	m := Main{
		Name:     "nexusctl",
		Commands: []Command{ping},
		Out:      &out,
		Err:      &bytes.Buffer{},
		Connect: func(opts GlobalOptions, logger *slog.Logger) (backend.Backend, error) {
			gotOpts = opts
			b, _, _ := testutil.NewMockBackend(t)
			return b, nil
		},
	}

	if err := m.Execute(context.Background(), []string{"--mode", "api", "ping", "--name", "club"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ping.ran {
		t.Fatalf("expected command to run")
	}
	if gotOpts.Mode != "api" || gotOpts.LogLevel != "warn" {
		t.Fatalf("unexpected options %+v", gotOpts)
	}
	if want := "{\n  \"backend\": \"mock\",\n  \"pong\": \"club\"\n}\n"; out.String() != want {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestExecuteWithoutCommand(t *testing.T) {
	m := Main{Name: "nexusctl", Commands: []Command{newPing()}, Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}
	if err := m.Execute(context.Background(), nil); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestExecuteSurfacesConnectError(t *testing.T) {
	boom := errors.New("no backend")
	m := Main{
		Name:     "nexusctl",
		Commands: []Command{newPing()},
		Out:      &bytes.Buffer{},
		Err:      &bytes.Buffer{},
		Connect: func(GlobalOptions, *slog.Logger) (backend.Backend, error) {
			return nil, boom
		},
	}
	if err := m.Execute(context.Background(), []string{"ping"}); !errors.Is(err, boom) {
		t.Fatalf("expected connect error, got %v", err)
	}
}

func TestConnectAppliesOverrides(t *testing.T) {
	t.Setenv("BACKEND_MODE", "api")
	t.Setenv("MOCK_DELAY", "0s")
	logger, _ := testutil.NewBufferLogger()

	b, err := Connect(GlobalOptions{Mode: "MOCK", TokenFile: filepath.Join(t.TempDir(), "token")}, logger)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if b.Name() != "mock" {
		t.Fatalf("expected mode override to win, got %s", b.Name())
	}

	b, err = Connect(GlobalOptions{APIURL: "http://api.test"}, logger)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if b.Name() != "api" {
		t.Fatalf("expected api backend from env, got %s", b.Name())
	}
}

func TestConnectRejectsUnknownMode(t *testing.T) {
	if _, err := Connect(GlobalOptions{Mode: "carrier-pigeon"}, nil); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
