// Where: internal/app/launcher.go
// What: Launching the interactive login in a fresh terminal session.
// Why: A dialog-approved login from a headless refresh needs a terminal to live in.
package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// LoginLauncher starts `catr login` in a new terminal session and returns
// without waiting for it.
type LoginLauncher interface {
	LaunchLogin() error
}

// TerminalLauncher implements LoginLauncher with the platform's terminal.
type TerminalLauncher struct {
	// Executable locates the catr binary. Defaults to os.Executable.
	Executable func() (string, error)
}

func (l TerminalLauncher) LaunchLogin() error {
	locate := l.Executable
	if locate == nil {
		locate = os.Executable
	}
	exe, err := locate()
	if err != nil {
		return err
	}

	cmd, err := terminalCommand(exe)
	if err != nil {
		return err
	}
	// Detached on purpose: the login session outlives this invocation.
	return cmd.Start()
}

func terminalCommand(exe string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("x-terminal-emulator", "-e", exe, "login"), nil
	case "darwin":
		script := fmt.Sprintf("tell application \"Terminal\" to do script %q", exe+" login")
		return exec.Command("osascript", "-e", script), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", exe, "login"), nil
	default:
		return nil, fmt.Errorf("no terminal launcher for %s", runtime.GOOS)
	}
}
