// Where: internal/app/refresh.go
// What: Handlers for the guarded refresh and the hidden unguarded refresh.
// Why: The guarded path is what schedulers call; the hidden one is its subprocess target.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/catr-tool/catr/internal/interaction"
	"github.com/catr-tool/catr/internal/ports"
	"github.com/catr-tool/catr/internal/refresh"
	"github.com/catr-tool/catr/internal/ui"
)

// runRefresh is the guarded path: bounded subprocess refresh, then a login
// hand-off prompt on failure or timeout.
func runRefresh(deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	if err := deps.Config.RequireRegistry(); err != nil {
		console.Error(err.Error())
		return 1
	}

	timeout := time.Duration(deps.Config.TimeoutSeconds) * time.Second
	if deps.Guard.Refresh(context.Background(), timeout) {
		console.Success(fmt.Sprintf("Token refreshed for %s", deps.Config.Source))
		return 0
	}

	console.Warn("Refresh did not complete; interactive login required")
	deps.Log.Warn("guarded refresh failed, offering interactive login")

	if !offerLogin(deps) {
		console.Info("Run 'catr login' when ready")
		return 1
	}

	if interaction.IsTerminal(os.Stdin) {
		return runLogin(deps, out)
	}
	// Headless invocation with an affirmative dialog answer: hand off to a
	// fresh terminal session so the MFA prompt has somewhere to live.
	if deps.Launcher == nil {
		console.Error("no terminal available for interactive login")
		return 1
	}
	if err := deps.Launcher.LaunchLogin(); err != nil {
		deps.Log.Error("could not launch login terminal", "error", err)
		console.Error("could not launch a login terminal")
		return 1
	}
	return 1
}

// offerLogin asks the user whether to start the interactive login, via the
// terminal when attached and the desktop dialog otherwise.
func offerLogin(deps Dependencies) bool {
	if interaction.IsTerminal(os.Stdin) && deps.Prompter != nil {
		answer, err := deps.Prompter.Confirm("Cloud session expired. Log in now?")
		if err != nil {
			// TUI unavailable (e.g. dumb terminal); plain prompt instead.
			answer, err = interaction.PromptYesNo("Cloud session expired. Log in now?")
			return err == nil && answer
		}
		return answer
	}
	answer, err := deps.Notifier.Question("catr",
		"Cloud session expired. Launch interactive login?")
	if err != nil {
		deps.Log.Info("no dialog facility for login prompt", "error", err)
		return false
	}
	return answer
}

// runRefreshOnce is the unguarded refresh the guard re-invokes. Its exit
// status is the guard's success signal.
func runRefreshOnce(deps Dependencies, out io.Writer) int {
	if err := deps.Config.RequireRegistry(); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	result := newOrchestrator(deps).Run(context.Background())
	fmt.Fprintln(out, result)
	if result != ports.ResultSuccess {
		return 1
	}
	return 0
}

func newOrchestrator(deps Dependencies) *refresh.Orchestrator {
	return &refresh.Orchestrator{
		Identity: deps.Identity,
		Tokens:   deps.Tokens,
		Store:    deps.Store,
		Notifier: deps.Notifier,
		Log:      deps.Log,
		Source:   deps.Config.Source,
	}
}
