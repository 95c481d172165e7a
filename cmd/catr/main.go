// Where: cmd/catr/main.go
// What: CLI entrypoint.
// Why: Execute catr commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/catr-tool/catr/internal/app"
	"github.com/catr-tool/catr/internal/wire"
)

func main() {
	deps, closer, err := wire.BuildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
