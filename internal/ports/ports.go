// Where: internal/ports/ports.go
// What: Narrow interfaces over the external tools this CLI drives.
// Why: Let command handlers and the orchestrator run against fakes in tests.
package ports

import (
	"context"
	"time"
)

// IdentityClient wraps the cloud identity probe and the federation tool.
type IdentityClient interface {
	// IsValid reports whether the current cloud credentials pass a single
	// identity probe. One probe, no retry.
	IsValid(ctx context.Context) bool
	// SilentLogin attempts a non-interactive re-authentication. It must never
	// block on user input; it relies on a previously cached session.
	SilentLogin(ctx context.Context) error
	// InteractiveLogin runs the federation tool interactively. This is the
	// only operation allowed to block indefinitely on human input.
	InteractiveLogin(ctx context.Context) error
}

// TokenSource issues a short-lived registry authorization token.
type TokenSource interface {
	Fetch(ctx context.Context) (string, error)
}

// TokenStore pushes a token into the package manager's credential store,
// overwriting any existing value for the configured source.
type TokenStore interface {
	Update(ctx context.Context, token string) error
}

// TokenInspector reads the currently persisted token back out of the
// package manager's config file. Purely a presentation accessor.
type TokenInspector interface {
	CurrentToken() (string, error)
}

// Notifier delivers fire-and-forget desktop feedback. Implementations must
// swallow their own failures; feedback never aborts the core operation.
type Notifier interface {
	Notify(ok bool, title, body string)
	// Question shows a modal yes/no dialog. Returns false when no dialog
	// facility is available.
	Question(title, body string) (bool, error)
}

// Guard runs the refresh orchestrator as an isolated subprocess under a hard
// wall-clock deadline, killing it on expiry.
type Guard interface {
	Refresh(ctx context.Context, timeout time.Duration) bool
}
