// Package bootstrap implements the one-time interactive flow that creates
// a configuration document when none exists.
package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"fndeploy/internal/cli/prompt"
	"fndeploy/internal/config"
	fnerrors "fndeploy/internal/errors"
)

// Outcome is the result of a bootstrap run.
type Outcome int

const (
	// Declined means the user refused to create a configuration; nothing
	// was written and the process exits cleanly.
	Declined Outcome = iota

	// Created means a configuration file was written. The run that creates
	// the file never proceeds to deployment: the user reviews the file and
	// reruns the tool deliberately.
	Created
)

// Confirmer asks yes/no questions.
type Confirmer interface {
	Confirm(question string, def bool) (bool, error)
}

// Flow drives the interactive bootstrap. Every collaborator is a field so
// tests can inject prompt answers, folder selection and the editor launch.
type Flow struct {
	// ConfigPath is where the document is written.
	ConfigPath string

	// WorkDir is scanned for subdirectories offered as folder choices.
	WorkDir string

	// Out receives user-facing output.
	Out io.Writer

	// Logger receives debug detail.
	Logger *slog.Logger

	// Prompter answers the yes/no questions.
	Prompter Confirmer

	// SelectFolders presents the folder multi-select. An empty selection
	// is explicitly permitted here; it only fails validation at deploy
	// time, after the user had a chance to edit the file.
	SelectFolders func(title string, choices []prompt.Choice) ([]string, error)

	// OpenEditor opens the freshly written file, or nil when no editor
	// integration applies (the user is told to edit manually instead).
	OpenEditor func(path string) error
}

// Run executes the bootstrap protocol and reports how it ended. A Created
// outcome with a nil error still means the caller must terminate the run:
// bootstrap never flows into deployment.
func (f *Flow) Run() (Outcome, error) {
	fmt.Fprintf(f.Out, "No configuration found at %s.\n", f.ConfigPath)
	fmt.Fprintln(f.Out, "fndeploy needs a config file listing the function folders to deploy")
	fmt.Fprintln(f.Out, "and the flags passed to every deploy command.")
	fmt.Fprintln(f.Out)

	create, err := f.Prompter.Confirm("Create it now?", true)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return Declined, nil
		}
		return Declined, errors.Wrap(err, "reading confirmation")
	}
	if !create {
		fmt.Fprintln(f.Out, "Aborted, nothing written.")
		return Declined, nil
	}

	useDefaults, err := f.Prompter.Confirm("Seed the default deploy flags (region, runtime, trigger, auth)?", true)
	if err != nil {
		return Declined, errors.Wrap(err, "reading confirmation")
	}

	choices, err := folderChoices(f.WorkDir)
	if err != nil {
		return Declined, err
	}
	f.Logger.Debug("offering folder choices", "count", len(choices))

	var selected []string
	if len(choices) == 0 {
		fmt.Fprintln(f.Out, "No subdirectories found; the folder list starts empty.")
	} else {
		selected, err = f.SelectFolders("Select folders to deploy:", choices)
		if err != nil {
			return Declined, err
		}
	}

	doc := config.Default()
	doc.FunctionFolders = append(doc.FunctionFolders, selected...)
	if useDefaults {
		doc.Flags = append(doc.Flags, config.DefaultDeployFlags...)
	}

	if err := config.Save(f.ConfigPath, doc); err != nil {
		return Declined, err
	}
	color.New(color.FgGreen).Fprintf(f.Out, "Wrote %s\n", f.ConfigPath)

	if f.OpenEditor != nil {
		if err := f.OpenEditor(f.ConfigPath); err != nil {
			return Created, errors.Mark(errors.Wrap(err, "opening configuration in editor"), fnerrors.ErrEditorLaunch)
		}
	} else {
		fmt.Fprintf(f.Out, "Review %s in your editor, then rerun fndeploy.\n", f.ConfigPath)
	}

	return Created, nil
}

// folderChoices lists every subdirectory of dir as a selectable choice,
// title and value both the directory name.
func folderChoices(dir string) ([]prompt.Choice, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var choices []prompt.Choice
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		choices = append(choices, prompt.Choice{Title: entry.Name(), Value: entry.Name()})
	}
	return choices, nil
}
