// Where: internal/app/login.go
// What: Handler for the interactive login command.
// Why: The one path allowed to block on human input, completing the refresh in-session.
package app

import (
	"context"
	"io"

	"github.com/catr-tool/catr/internal/ports"
	"github.com/catr-tool/catr/internal/ui"
)

func runLogin(deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	if err := deps.Config.RequireRegistry(); err != nil {
		console.Error(err.Error())
		return 1
	}

	console.Info("Starting interactive login")
	deps.Log.Info("interactive login started")

	if err := deps.Identity.InteractiveLogin(context.Background()); err != nil {
		deps.Log.Warn("interactive login failed", "error", err)
		console.Error("Login failed")
		return 1
	}
	deps.Log.Info("interactive login succeeded")

	// Propagate the token in the same session so the user ends up ready.
	result := newOrchestrator(deps).Run(context.Background())
	if result != ports.ResultSuccess {
		console.Error("Login succeeded but token propagation failed: " + result.String())
		return 1
	}
	console.Success("Logged in and token refreshed")
	return 0
}
