// Where: internal/notify/notify.go
// What: Desktop notification and modal dialog delivery.
// Why: Scheduled refreshes have no terminal; the desktop is the feedback channel.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/catr-tool/catr/internal/runner"
)

// errNoDialog means the platform's dialog facility is not installed.
var errNoDialog = errors.New("no dialog facility available")

// callTimeout bounds every notification call. The host facility hanging
// must never stall the refresh.
const callTimeout = 5 * time.Second

// Desktop delivers feedback through the host OS's notification and dialog
// facilities. It implements ports.Notifier. All delivery failures are logged
// and swallowed; feedback is strictly fire-and-forget.
type Desktop struct {
	run       runner.CommandRunner
	log       *slog.Logger
	available func(string) bool
}

// NewDesktop builds a Desktop notifier over the given runner.
func NewDesktop(run runner.CommandRunner, log *slog.Logger) *Desktop {
	return &Desktop{
		run:       run,
		log:       log,
		available: runner.Available,
	}
}

// Notify shows a transient desktop notification.
func (d *Desktop) Notify(ok bool, title, body string) {
	name, args := notifyCommand(ok, title, body)
	if name == "" || !d.available(name) {
		d.log.Info("no notification facility available", "title", title)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	if err := d.run.RunQuiet(ctx, name, args...); err != nil {
		d.log.Info("notification delivery failed", "title", title, "error", err)
	}
}

// Question shows a modal yes/no dialog and reports the answer. A missing
// dialog facility is an error so callers can fall back to the terminal.
func (d *Desktop) Question(title, body string) (bool, error) {
	name, args, err := questionCommand(title, body)
	if err != nil {
		return false, err
	}
	if !d.available(name) {
		return false, errNoDialog
	}

	// No timeout: a modal question legitimately waits for the user.
	err = d.run.RunQuiet(context.Background(), name, args...)
	if err != nil {
		// Dialog tools answer "no" through a nonzero exit.
		return false, nil
	}
	return true, nil
}
