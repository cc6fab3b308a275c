package commands

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"fndeploy/internal/bootstrap"
	"fndeploy/internal/cli/prompt"
	"fndeploy/internal/config"
	"fndeploy/internal/deploy"
	"fndeploy/internal/editor"
	fnerrors "fndeploy/internal/errors"
	"fndeploy/internal/logging"
	"fndeploy/internal/settings"
)

func init() {
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy every configured function folder in order",
	Long: `Read the configuration document, validate it, and run the deploy
command once per folder, in list order. The first failure aborts the run;
remaining folders are not attempted.

When no configuration exists yet, the interactive bootstrap runs instead
and the process exits so the file can be reviewed before deploying.`,
	RunE: runDeploy,
}

func runDeploy(c *cobra.Command, _ []string) error {
	s, err := settings.Load()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	if _, err := os.Stat(s.ConfigFile); err != nil {
		if os.IsNotExist(err) {
			return runBootstrap(c, s)
		}
		return fnerrors.NewFatal(errors.Wrapf(err, "checking %s", s.ConfigFile), "")
	}

	doc, err := config.Load(s.ConfigFile)
	if err != nil {
		return fnerrors.NewFatal(err, "fix or delete "+s.ConfigFile+" and rerun")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	if err := config.ValidateFolders("functionFolders", doc.FunctionFolders, workDir); err != nil {
		return fnerrors.NewFatal(err, "edit "+s.ConfigFile+" and rerun")
	}
	if err := config.ValidateFlags(doc.Flags); err != nil {
		return fnerrors.NewFatal(err, "edit "+s.ConfigFile+" and rerun")
	}

	runner := deploy.NewRunner(s.DeployCommand, doc.Flags)
	runner.Out = c.OutOrStdout()
	runner.Logger = logging.FromContext(c.Context())

	if err := runner.Run(doc.FunctionFolders); err != nil {
		return fnerrors.NewFatal(err, "")
	}
	return nil
}

// runBootstrap drives the interactive configuration creation and maps its
// outcome onto the exit-code policy: decline exits 0, a created file exits
// 1 so the run never continues into a deployment.
func runBootstrap(c *cobra.Command, s *settings.Settings) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	flow := &bootstrap.Flow{
		ConfigPath:    s.ConfigFile,
		WorkDir:       workDir,
		Out:           c.OutOrStdout(),
		Logger:        logging.FromContext(c.Context()),
		Prompter:      prompt.New(),
		SelectFolders: selectFolders,
	}
	if editor.InVSCodeTerminal() {
		flow.OpenEditor = func(path string) error {
			return editor.Open(s.Editor, path)
		}
	}

	outcome, err := flow.Run()
	if err != nil {
		// The editor launch failing does not undo the write; the file is
		// there, it just was not opened.
		if errors.Is(err, fnerrors.ErrEditorLaunch) {
			return fnerrors.NewFatal(err, "open "+s.ConfigFile+" manually, then rerun fndeploy")
		}
		return fnerrors.NewFatal(err, "")
	}
	if outcome == bootstrap.Created {
		// Not an error in the user's eyes, but the exit code forces a
		// deliberate rerun after the file has been reviewed.
		return fnerrors.NewExitError(nil, fnerrors.ExitFailure)
	}
	return nil
}

// selectFolders picks the folder multi-select implementation: the fuzzy
// full-screen picker on a terminal, a numbered line prompt otherwise.
func selectFolders(title string, choices []prompt.Choice) ([]string, error) {
	if logging.StdinIsTTY() {
		return prompt.FuzzyMultiSelect(title, choices)
	}
	return prompt.New().MultiSelect(title, choices)
}
