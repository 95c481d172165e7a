// Where: internal/wire/wire.go
// What: CLI dependency wiring.
// Why: Centralize dependency construction for reuse by main and tests.
package wire

import (
	"io"
	"os"

	"github.com/catr-tool/catr/internal/app"
	"github.com/catr-tool/catr/internal/auth"
	"github.com/catr-tool/catr/internal/codeartifact"
	"github.com/catr-tool/catr/internal/config"
	"github.com/catr-tool/catr/internal/guard"
	"github.com/catr-tool/catr/internal/interaction"
	"github.com/catr-tool/catr/internal/logfile"
	"github.com/catr-tool/catr/internal/notify"
	"github.com/catr-tool/catr/internal/nuget"
	"github.com/catr-tool/catr/internal/runner"
)

var (
	// Stdout is the writer used for CLI output. Tests may override.
	Stdout io.Writer = os.Stdout
	// ResolveConfig resolves the global configuration. Tests may override.
	ResolveConfig = config.Resolve
)

// BuildDependencies constructs CLI dependencies. It returns the dependencies
// bundle, a closer for the log file, and any initialization error.
func BuildDependencies() (app.Dependencies, io.Closer, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	log := logfile.Open(cfg.LogPath)
	run := runner.ExecRunner{}

	deps := app.Dependencies{
		Config:    cfg,
		Out:       Stdout,
		Log:       log.Logger,
		Identity:  auth.NewClient(cfg.Profile, cfg.Region, run, log.Logger),
		Tokens:    codeartifact.NewSource(cfg, run, log.Logger),
		Store:     nuget.NewStore(cfg.Source, run),
		Inspector: nuget.NewInspector(cfg.NuGetConfigPath, cfg.Source),
		Notifier:  notify.NewDesktop(run, log.Logger),
		Guard:     guard.New(run, log.Logger),
		Prompter:  interaction.HuhPrompter{},
		Launcher:  app.TerminalLauncher{},
	}

	return deps, log, nil
}
