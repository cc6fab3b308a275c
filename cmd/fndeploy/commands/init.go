package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fnerrors "fndeploy/internal/errors"
	"fndeploy/internal/settings"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file interactively",
	Long: `Run the interactive bootstrap: confirm creation, optionally seed the
default deploy flags, and select working-directory subdirectories as
function folders. The written file should be reviewed before deploying.`,
	Example: `  # Bootstrap a new project
  fndeploy init

  # Recreate an existing configuration from scratch
  fndeploy init --force`,
	RunE: runInit,
}

func runInit(c *cobra.Command, _ []string) error {
	s, err := settings.Load()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	if _, err := os.Stat(s.ConfigFile); err == nil && !initForce {
		fmt.Fprintf(c.OutOrStdout(), "Configuration already exists at %s\n", s.ConfigFile)
		fmt.Fprintln(c.OutOrStdout(), "Use --force to overwrite")
		return nil
	}

	return runBootstrap(c, s)
}
