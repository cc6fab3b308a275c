// Package deploy runs the external deploy command once per configured
// folder, strictly in list order.
package deploy

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
)

// Runner executes one deploy command per folder. Deployments are strictly
// sequential: each one changes the process working directory into its
// folder, so overlapping runs would race on shared state. There are no
// timeouts and no retries; the first failure aborts the whole run.
type Runner struct {
	// Command is the deploy command prefix, e.g. "gcloud functions deploy".
	// The folder name and the joined flags are appended to it.
	Command string

	// Flags are passed verbatim, joined into one space-separated string.
	Flags []string

	// Out receives progress reporting. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives debug detail about constructed commands.
	Logger *slog.Logger

	// execute runs the argv with output streamed to the terminal.
	// Replaceable in tests.
	execute func(argv []string) error
}

// NewRunner creates a Runner for the given deploy command and flags.
func NewRunner(command string, flags []string) *Runner {
	r := &Runner{
		Command: command,
		Flags:   flags,
		Out:     os.Stdout,
		Logger:  slog.Default(),
	}
	r.execute = streamCommand
	return r
}

// streamCommand runs argv with stdout and stderr passed through live to
// the invoking terminal. Nothing is captured or buffered; the subprocess
// exit code is the only contract.
func streamCommand(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Run deploys every folder in order. It returns on the first failure,
// leaving the remaining folders unattempted; rerunning redeploys
// everything, so the deploy command is assumed idempotent by the operator.
func (r *Runner) Run(folders []string) error {
	startDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "resolving working directory")
	}
	// A failure mid-loop must not leave the process inside the folder that
	// broke the run.
	defer func() { _ = os.Chdir(startDir) }()

	flagStr := strings.Join(r.Flags, " ")

	for i, folder := range folders {
		cmdStr := fmt.Sprintf("%s %s %s", r.Command, folder, flagStr)

		argv, err := shellquote.Split(cmdStr)
		if err != nil {
			return errors.Wrapf(err, "parsing deploy command for %s", folder)
		}
		r.Logger.Debug("constructed deploy command", "folder", folder, "argv", argv)

		if err := os.Chdir(folder); err != nil {
			return errors.Wrapf(err, "entering %s", folder)
		}

		color.New(color.FgCyan, color.Bold).Fprintf(r.Out, "Deploying %s (%d/%d)\n", folder, i+1, len(folders))
		fmt.Fprintf(r.Out, "  %s\n", cmdStr)

		if err := r.execute(argv); err != nil {
			return errors.Wrapf(err, "deploying %s", folder)
		}

		color.New(color.FgGreen).Fprintf(r.Out, "Deployed %s\n", folder)

		if err := os.Chdir(startDir); err != nil {
			return errors.Wrapf(err, "leaving %s", folder)
		}
	}

	color.New(color.FgGreen, color.Bold).Fprintf(r.Out, "All %d folders deployed\n", len(folders))
	return nil
}
