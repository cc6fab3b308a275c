// Package editor detects the VS Code integrated terminal and launches an
// editor on the freshly written configuration file.
package editor

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// termProgramEnv is the environment variable VS Code sets in its
// integrated terminal.
const termProgramEnv = "TERM_PROGRAM"

// vscodeTermProgram is the value identifying VS Code.
const vscodeTermProgram = "vscode"

// InVSCodeTerminal reports whether the tool is running inside the VS Code
// integrated terminal. Only then is auto-opening the configuration file
// attempted; any other terminal gets manual-edit instructions instead.
func InVSCodeTerminal() bool {
	return os.Getenv(termProgramEnv) == vscodeTermProgram
}

// Open launches the given editor command with path as its sole argument,
// with the terminal's streams attached so full-screen editors work.
func Open(command, path string) error {
	cmd := exec.Command(command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %s", command)
	}
	return nil
}
