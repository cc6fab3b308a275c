// Package main is the entry point for the fndeploy CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"fndeploy/cmd/fndeploy/commands"
	fnerrors "fndeploy/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *fnerrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(fnerrors.ExitFailure)
	}
}
