// Package testutil holds shared helpers for command integration tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli"
	"github.com/crewdeck/crewdeck/internal/config"
	"github.com/crewdeck/crewdeck/internal/storage"
	"github.com/crewdeck/crewdeck/internal/store"
)

// SetupCLI builds a CLI over a fresh in-memory backend and returns it with a
// context that injects it into commands.
func SetupCLI(t *testing.T) (*cli.CLI, context.Context) {
	t.Helper()

	backend := storage.NewMemory()
	s := store.Open(backend)
	c := cli.NewWithStore(s, backend, config.Default())

	return c, cli.WithCLI(context.Background(), c)
}

// ExecuteCommand runs a cobra command with the given context and args,
// capturing stdout.
func ExecuteCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
