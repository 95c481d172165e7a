// Where: internal/guard/guard.go
// What: Bounded re-invocation of the refresh as an isolated subprocess.
// Why: A hung auth prompt in a child must be killable without its cooperation.
package guard

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/catr-tool/catr/internal/runner"
)

// refreshOnceCommand is the hidden CLI command the subprocess executes.
const refreshOnceCommand = "__refresh-once"

// Runner executes one refresh in a subprocess under a hard wall-clock
// deadline. It implements ports.Guard. Process isolation, rather than an
// in-process timer, guarantees forceful termination: CommandContext kills
// the child when the deadline passes.
type Runner struct {
	run runner.CommandRunner
	log *slog.Logger

	// executable locates the binary to re-invoke. Test seam.
	executable func() (string, error)
}

// New builds a guard Runner over the given command runner.
func New(run runner.CommandRunner, log *slog.Logger) *Runner {
	return &Runner{
		run:        run,
		log:        log,
		executable: os.Executable,
	}
}

// Refresh runs the hidden refresh command bounded by timeout. True iff the
// subprocess exits zero within the budget; a nonzero exit and a deadline
// kill are both false.
func (r *Runner) Refresh(ctx context.Context, timeout time.Duration) bool {
	exe, err := r.executable()
	if err != nil {
		r.log.Error("cannot locate own executable", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err = r.run.RunQuiet(ctx, exe, refreshOnceCommand)
	elapsed := time.Since(start)

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		r.log.Warn("bounded refresh timed out", "timeout", timeout, "elapsed", elapsed)
		return false
	case err != nil:
		r.log.Warn("bounded refresh failed", "error", err, "elapsed", elapsed)
		return false
	}
	r.log.Info("bounded refresh succeeded", "elapsed", elapsed)
	return true
}
