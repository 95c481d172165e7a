// Where: internal/app/token.go
// What: Handler for the stored-token display command.
// Why: A read-only accessor over the credential store file; never crashes on absence.
package app

import (
	"errors"
	"io"

	"github.com/catr-tool/catr/internal/ports"
	"github.com/catr-tool/catr/internal/ui"
)

func runGt(deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	token, err := deps.Inspector.CurrentToken()
	switch {
	case errors.Is(err, ports.ErrConfigNotFound):
		console.Warn("Credential store config not found")
		return 1
	case errors.Is(err, ports.ErrTokenNotFound):
		console.Warn("No token stored for " + deps.Config.Source)
		return 1
	case err != nil:
		console.Error(err.Error())
		return 1
	}

	console.Header("🔑", "Stored token for "+deps.Config.Source+":")
	console.ItemPlain(token)
	return 0
}
