package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/crewdeck/crewdeck/internal/cli/styles"
	"github.com/crewdeck/crewdeck/internal/config"
	"github.com/crewdeck/crewdeck/internal/logging"
	"github.com/crewdeck/crewdeck/internal/storage"
	"github.com/crewdeck/crewdeck/internal/store"
)

// CLI represents the CLI application context
type CLI struct {
	Store   *store.Store
	Config  *config.Config
	backend storage.Backend
}

// NewCLI loads configuration, opens the blob store and the data store.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Logging failures shouldn't block the command; note it and move on.
	if err := logging.Init(cfg.LogPath(), cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file: %v\n", err)
	}

	styles.Init(cfg.Theme)

	backend, err := storage.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}

	return &CLI{
		Store:   store.Open(backend),
		Config:  cfg,
		backend: backend,
	}, nil
}

// NewWithStore wires a CLI around an already-open store and backend.
// Tests use it to run commands against an in-memory backend.
func NewWithStore(s *store.Store, backend storage.Backend, cfg *config.Config) *CLI {
	return &CLI{Store: s, Config: cfg, backend: backend}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.backend != nil {
		return c.backend.Close()
	}
	return nil
}

// Backend exposes the blob store for the data import/export commands.
func (c *CLI) Backend() storage.Backend {
	return c.backend
}

type ctxKey struct{}

// WithCLI returns a context carrying an already-built CLI. Tests use this to
// run commands against an in-memory store.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// Resolve returns the CLI from the context when one was injected, or builds a
// fresh one. The cleanup function closes only what Resolve opened.
func Resolve(ctx context.Context) (*CLI, func(), error) {
	if c, ok := ctx.Value(ctxKey{}).(*CLI); ok {
		return c, func() {}, nil
	}

	c, err := NewCLI(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: error closing store: %v\n", err)
		}
	}, nil
}
