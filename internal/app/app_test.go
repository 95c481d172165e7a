// Where: internal/app/app_test.go
// What: Tests for command dispatch and handlers.
// Why: Exit codes and the login hand-off are the tool's whole contract.
package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/catr-tool/catr/internal/config"
	"github.com/catr-tool/catr/internal/interaction"
	"github.com/catr-tool/catr/internal/ports"
)

type fakeIdentity struct {
	valid          bool
	interactiveErr error
	interactives   int
}

func (f *fakeIdentity) IsValid(context.Context) bool { return f.valid }

func (f *fakeIdentity) SilentLogin(context.Context) error { return nil }

func (f *fakeIdentity) InteractiveLogin(context.Context) error {
	f.interactives++
	return f.interactiveErr
}

type fakeSource struct{ token string }

func (f *fakeSource) Fetch(context.Context) (string, error) {
	if f.token == "" {
		return "", errors.New("empty token")
	}
	return f.token, nil
}

type fakeStore struct{ tokens []string }

func (f *fakeStore) Update(_ context.Context, token string) error {
	f.tokens = append(f.tokens, token)
	return nil
}

type fakeInspector struct {
	token string
	err   error
}

func (f *fakeInspector) CurrentToken() (string, error) { return f.token, f.err }

type fakeNotifier struct {
	questions int
	answer    bool
	err       error
}

func (f *fakeNotifier) Notify(bool, string, string) {}

func (f *fakeNotifier) Question(string, string) (bool, error) {
	f.questions++
	return f.answer, f.err
}

type fakeGuard struct {
	ok       bool
	timeouts []time.Duration
}

func (f *fakeGuard) Refresh(_ context.Context, timeout time.Duration) bool {
	f.timeouts = append(f.timeouts, timeout)
	return f.ok
}

type fakeLauncher struct {
	launched int
	err      error
}

func (f *fakeLauncher) LaunchLogin() error {
	f.launched++
	return f.err
}

func testDeps(out io.Writer) Dependencies {
	cfg := config.Default()
	cfg.Domain = "corp-packages"
	cfg.DomainOwner = "123456789012"
	return Dependencies{
		Config:    cfg,
		Out:       out,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Identity:  &fakeIdentity{valid: true},
		Tokens:    &fakeSource{token: "tok"},
		Store:     &fakeStore{},
		Inspector: &fakeInspector{token: "abc123"},
		Notifier:  &fakeNotifier{},
		Guard:     &fakeGuard{ok: true},
	}
}

// Pretend there is no terminal so prompts route to the notifier.
func withoutTerminal(t *testing.T) {
	t.Helper()
	prev := interaction.IsTerminal
	interaction.IsTerminal = func(*os.File) bool { return false }
	t.Cleanup(func() { interaction.IsTerminal = prev })
}

func TestRunNoArgsShowsHelp(t *testing.T) {
	var buf bytes.Buffer
	code := Run(nil, testDeps(&buf))
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "catr refresh") {
		t.Fatalf("help missing:\n%s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	var buf bytes.Buffer
	code := Run([]string{"help"}, testDeps(&buf))
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "Usage:") {
		t.Fatalf("usage missing:\n%s", buf.String())
	}
}

func TestRunUnknownCommandRoutesToHelp(t *testing.T) {
	var buf bytes.Buffer
	code := Run([]string{"frobnicate"}, testDeps(&buf))
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Usage:") {
		t.Fatalf("help missing:\n%s", buf.String())
	}
}

func TestRefreshSuccess(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)
	guard := &fakeGuard{ok: true}
	deps.Guard = guard

	code := Run([]string{"refresh"}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if len(guard.timeouts) != 1 || guard.timeouts[0] != 45*time.Second {
		t.Fatalf("unexpected guard timeouts: %v", guard.timeouts)
	}
}

func TestRefreshFailurePromptDeclined(t *testing.T) {
	withoutTerminal(t)

	var buf bytes.Buffer
	deps := testDeps(&buf)
	deps.Guard = &fakeGuard{ok: false}
	notifier := &fakeNotifier{answer: false}
	deps.Notifier = notifier
	launcher := &fakeLauncher{}
	deps.Launcher = launcher

	code := Run([]string{"refresh"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if notifier.questions != 1 {
		t.Fatalf("expected one dialog, got %d", notifier.questions)
	}
	if launcher.launched != 0 {
		t.Fatal("login launched despite declined prompt")
	}
}

func TestRefreshFailurePromptAcceptedHeadless(t *testing.T) {
	withoutTerminal(t)

	var buf bytes.Buffer
	deps := testDeps(&buf)
	deps.Guard = &fakeGuard{ok: false}
	deps.Notifier = &fakeNotifier{answer: true}
	launcher := &fakeLauncher{}
	deps.Launcher = launcher

	Run([]string{"refresh"}, deps)
	if launcher.launched != 1 {
		t.Fatalf("expected login terminal launch, got %d", launcher.launched)
	}
}

func TestRefreshIncompleteConfig(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)
	deps.Config.Domain = ""

	code := Run([]string{"refresh"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "config incomplete") {
		t.Fatalf("missing config error:\n%s", buf.String())
	}
}

func TestRefreshOnceExitTracksResult(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)

	if code := Run([]string{"__refresh-once"}, deps); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}

	deps.Tokens = &fakeSource{token: ""}
	if code := Run([]string{"__refresh-once"}, deps); code != 1 {
		t.Fatalf("expected 1 for failed refresh, got %d", code)
	}
}

func TestLoginSuccessPropagatesToken(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)
	identity := &fakeIdentity{valid: true}
	deps.Identity = identity
	store := &fakeStore{}
	deps.Store = store

	code := Run([]string{"login"}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if identity.interactives != 1 {
		t.Fatalf("expected one interactive login, got %d", identity.interactives)
	}
	if len(store.tokens) != 1 {
		t.Fatalf("token not propagated after login: %v", store.tokens)
	}
}

func TestLoginFailureStops(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)
	deps.Identity = &fakeIdentity{interactiveErr: errors.New("cancelled")}
	store := &fakeStore{}
	deps.Store = store

	code := Run([]string{"login"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if len(store.tokens) != 0 {
		t.Fatal("refresh ran after failed login")
	}
}

func TestCheckExitCodes(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)

	deps.Identity = &fakeIdentity{valid: true}
	if code := Run([]string{"check"}, deps); code != 0 {
		t.Fatalf("expected 0 for valid credentials, got %d", code)
	}

	deps.Identity = &fakeIdentity{valid: false}
	if code := Run([]string{"check"}, deps); code != 1 {
		t.Fatalf("expected 1 for invalid credentials, got %d", code)
	}
}

func TestGtShowsToken(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)

	code := Run([]string{"gt"}, deps)
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "abc123") {
		t.Fatalf("token missing:\n%s", buf.String())
	}
}

func TestGtMissingStoreConfig(t *testing.T) {
	var buf bytes.Buffer
	deps := testDeps(&buf)
	deps.Inspector = &fakeInspector{err: ports.ErrConfigNotFound}

	code := Run([]string{"gt"}, deps)
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Fatalf("missing not-found report:\n%s", buf.String())
	}
}

func TestConfigShowsResolvedValues(t *testing.T) {
	var buf bytes.Buffer
	code := Run([]string{"config"}, testDeps(&buf))
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	for _, want := range []string{"corp-packages", "123456789012", "codeartifact"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q:\n%s", want, buf.String())
		}
	}
}
