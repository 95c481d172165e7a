//go:build darwin

// Where: internal/notify/notify_darwin.go
// What: macOS notification and dialog commands.
// Why: osascript covers both facilities without extra installs.
package notify

import "fmt"

func notifyCommand(_ bool, title, body string) (string, []string) {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	return "osascript", []string{"-e", script}
}

func questionCommand(title, body string) (string, []string, error) {
	// "Not now" must be the designated cancel button: only the cancel
	// button makes osascript exit nonzero, which is how Question reads a
	// decline.
	script := fmt.Sprintf(
		"display dialog %q with title %q buttons {\"Not now\", \"Log in\"} default button \"Log in\" cancel button \"Not now\"",
		body, title)
	return "osascript", []string{"-e", script}, nil
}
