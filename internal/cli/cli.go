// Package cli runs flaggy-based command line programs against the service contract.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"github.com/preston-bernstein/nexus-data-service/internal/auth"
	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/client"
	"github.com/preston-bernstein/nexus-data-service/internal/config"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
)

// ErrNoCommand is returned when no subcommand was given.
var ErrNoCommand = errors.New("no command given")

// Command is one top-level subcommand.
type Command interface {
	Flaggy() *flaggy.Subcommand
	Run(ctx context.Context, env *Env) error
}

// GlobalOptions are flags shared by every command. Empty values fall back to
// the loaded configuration.
type GlobalOptions struct {
	Mode      string
	APIURL    string
	TokenFile string
	LogLevel  string
}

// Env is what a command runs against.
type Env struct {
	Backend backend.Backend
	Out     io.Writer
	Logger  *slog.Logger
}

// ConnectFunc resolves the backend for a run.
type ConnectFunc func(opts GlobalOptions, logger *slog.Logger) (backend.Backend, error)

// Main parses arguments and dispatches to the command that was used.
type Main struct {
	Name        string
	Description string
	Version     string
	Commands    []Command
	// Connect defaults to Connect.
	Connect ConnectFunc
	Out     io.Writer
	Err     io.Writer
}

// Run executes os.Args and exits non-zero on failure.
func (m Main) Run() {
	if err := m.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(m.errWriter(), "%s: %v\n", m.Name, err)
		os.Exit(1)
	}
}

// Execute parses args and runs the selected command.
func (m Main) Execute(ctx context.Context, args []string) error {
	p := flaggy.NewParser(m.Name)
	p.Description = m.Description
	p.Version = m.Version
	p.ShowHelpOnUnexpected = false

	opts := GlobalOptions{LogLevel: "warn"}
	p.String(&opts.Mode, "m", "mode", "Backend mode (mock, api); overrides BACKEND_MODE")
	p.String(&opts.APIURL, "u", "api-url", "REST API base URL; overrides API_BASE_URL")
	p.String(&opts.TokenFile, "t", "token-file", "Where the session token is kept; overrides TOKEN_FILE")
	p.String(&opts.LogLevel, "", "log-level", "Log level written to stderr")

	for _, c := range m.Commands {
		p.AttachSubcommand(c.Flaggy(), 1)
	}
	if err := p.ParseArgs(args); err != nil {
		return err
	}

	for _, c := range m.Commands {
		if !c.Flaggy().Used {
			continue
		}
		logger := logging.NewLogger(logging.Config{
			Level:   opts.LogLevel,
			Service: m.Name,
			Version: m.Version,
			Output:  m.errWriter(),
		})
		connect := m.Connect
		if connect == nil {
			connect = Connect
		}
		b, err := connect(opts, logger)
		if err != nil {
			return err
		}
		return c.Run(ctx, &Env{Backend: b, Out: m.outWriter(), Logger: logger})
	}
	return ErrNoCommand
}

// Connect loads configuration, applies opts and builds the backend through
// the client factory with a file-backed token store.
func Connect(opts GlobalOptions, logger *slog.Logger) (backend.Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		cfg.Mode = config.Mode(strings.ToLower(opts.Mode))
	}
	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	if opts.TokenFile != "" {
		cfg.TokenFile = opts.TokenFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return client.New(cfg, client.Deps{
		Logger: logger,
		Tokens: auth.NewFileTokenStore(cfg.TokenFile),
	})
}

// WriteJSON prints v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (m Main) outWriter() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

func (m Main) errWriter() io.Writer {
	if m.Err != nil {
		return m.Err
	}
	return os.Stderr
}
