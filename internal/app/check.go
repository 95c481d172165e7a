// Where: internal/app/check.go
// What: Handler for the credential validity check.
// Why: One probe, one line of output, exit status carries the answer.
package app

import (
	"context"
	"io"

	"github.com/catr-tool/catr/internal/ui"
)

func runCheck(deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	if deps.Identity.IsValid(context.Background()) {
		console.Success("Cloud credentials are valid")
		return 0
	}
	console.Warn("Cloud credentials are invalid or expired")
	return 1
}
