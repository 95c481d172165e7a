// Where: internal/app/config_cmd.go
// What: Handler showing the resolved configuration.
// Why: Make env overrides and file values inspectable before a scheduled run misfires.
package app

import (
	"io"

	"github.com/catr-tool/catr/internal/ui"
)

func runConfig(deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	cfg := deps.Config

	owner := cfg.DomainOwner
	if owner == "" {
		owner = "(unset)"
	}
	domain := cfg.Domain
	if domain == "" {
		domain = "(unset)"
	}

	console.Header("⚙️", "Resolved configuration:")
	console.Item("Profile", cfg.Profile)
	console.Item("Domain", domain)
	console.Item("Domain owner", owner)
	console.Item("Region", cfg.Region)
	console.Item("Source", cfg.Source)
	console.Item("Log path", cfg.LogPath)
	console.Item("Timeout (s)", cfg.TimeoutSeconds)
	if cfg.NuGetConfigPath != "" {
		console.Item("NuGet config", cfg.NuGetConfigPath)
	}
	return 0
}
