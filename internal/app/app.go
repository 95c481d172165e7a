// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/catr-tool/catr/internal/config"
	"github.com/catr-tool/catr/internal/interaction"
	"github.com/catr-tool/catr/internal/ports"
	"github.com/catr-tool/catr/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables swapping implementations of every
// external collaborator in tests.
type Dependencies struct {
	Config    config.Config
	Out       io.Writer
	Log       *slog.Logger
	Identity  ports.IdentityClient
	Tokens    ports.TokenSource
	Store     ports.TokenStore
	Inspector ports.TokenInspector
	Notifier  ports.Notifier
	Guard     ports.Guard
	Prompter  interaction.Prompter
	// Launcher starts the interactive login in a fresh terminal session
	// when the refresh was triggered without one.
	Launcher LoginLauncher
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Refresh     RefreshCmd     `cmd:"" help:"Refresh the registry token (bounded; prompts for login on failure)"`
	Login       LoginCmd       `cmd:"" help:"Interactive federation login, then refresh"`
	Check       CheckCmd       `cmd:"" help:"Check whether cloud credentials are currently valid"`
	Gt          GtCmd          `cmd:"" help:"Show the token currently stored for the configured source"`
	Config      ConfigCmd      `cmd:"" name:"config" help:"Show the resolved configuration"`
	Version     VersionCmd     `cmd:"" help:"Show version information"`
	Help        HelpCmd        `cmd:"" help:"Show usage"`
	RefreshOnce RefreshOnceCmd `cmd:"" name:"__refresh-once" hidden:"" help:"Single unguarded refresh (subprocess target)"`
}

type (
	RefreshCmd     struct{}
	LoginCmd       struct{}
	CheckCmd       struct{}
	GtCmd          struct{}
	ConfigCmd      struct{}
	VersionCmd     struct{}
	HelpCmd        struct{}
	RefreshOnceCmd struct{}
)

// Run is the main entry point for CLI command execution. It parses the
// arguments and dispatches to the matching handler. Returns 0 on success,
// 1 on failure.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	// Load .env from the working directory when present, matching how the
	// scheduled wrapper scripts pass overrides.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	if len(args) == 0 {
		return runHelp(out, 0)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		// Unrecognized input routes to help.
		return runHelp(out, 1)
	}

	handlers := map[string]func(Dependencies, io.Writer) int{
		"refresh":        runRefresh,
		"login":          runLogin,
		"check":          runCheck,
		"gt":             runGt,
		"config":         runConfig,
		"__refresh-once": runRefreshOnce,
		"help": func(_ Dependencies, out io.Writer) int {
			return runHelp(out, 0)
		},
		"version": func(_ Dependencies, out io.Writer) int {
			fmt.Fprintln(out, version.GetVersion())
			return 0
		},
	}

	if handler, ok := handlers[ctx.Command()]; ok {
		return handler(deps, out)
	}
	return runHelp(out, 1)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

func runHelp(out io.Writer, code int) int {
	fmt.Fprintln(out, "catr — refresh the registry token for the configured source")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  catr refresh   Refresh the token (bounded; offers login on failure)")
	fmt.Fprintln(out, "  catr login     Interactive federation login, then refresh")
	fmt.Fprintln(out, "  catr check     Check whether cloud credentials are valid")
	fmt.Fprintln(out, "  catr gt        Show the currently stored token")
	fmt.Fprintln(out, "  catr config    Show the resolved configuration")
	fmt.Fprintln(out, "  catr version   Show version information")
	fmt.Fprintln(out, "  catr help      Show this message")
	return code
}
