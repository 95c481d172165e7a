// Where: internal/nuget/store.go
// What: Token write-back through the package manager's own CLI.
// Why: The store file has one owner; this tool never writes it directly.
package nuget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/catr-tool/catr/internal/meta"
	"github.com/catr-tool/catr/internal/runner"
)

// ErrNoStoreCLI is returned when neither nuget-capable CLI is installed.
var ErrNoStoreCLI = errors.New("neither dotnet nor nuget found on PATH")

// Store pushes tokens into the named source's credential slot, overwriting
// any existing value. It implements ports.TokenStore.
type Store struct {
	source    string
	run       runner.CommandRunner
	available func(string) bool
}

// NewStore builds a Store for the named package source.
func NewStore(source string, run runner.CommandRunner) *Store {
	return &Store{
		source:    source,
		run:       run,
		available: runner.Available,
	}
}

// Update delegates the credential write to the first available CLI.
func (s *Store) Update(ctx context.Context, token string) error {
	switch {
	case s.available("dotnet"):
		out, err := s.run.RunOutput(ctx, "dotnet",
			"nuget", "update", "source", s.source,
			"--username", meta.StoreUsername,
			"--password", token,
			"--store-password-in-clear-text")
		if err != nil {
			return fmt.Errorf("store update failed: %w: %s", err, strings.TrimSpace(string(out)))
		}
		return nil
	case s.available("nuget"):
		out, err := s.run.RunOutput(ctx, "nuget",
			"sources", "update",
			"-Name", s.source,
			"-Username", meta.StoreUsername,
			"-Password", token)
		if err != nil {
			return fmt.Errorf("store update failed: %w: %s", err, strings.TrimSpace(string(out)))
		}
		return nil
	default:
		return ErrNoStoreCLI
	}
}
