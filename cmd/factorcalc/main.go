// Command factorcalc runs a randomized, parallel factor search for a given
// integer from the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/factorcalc/internal/app"
	apperrors "github.com/agbru/factorcalc/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	// --version works in any position, before flag parsing
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return a.Run(context.Background(), os.Stdout)
}
