package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fndeploy/internal/config"
	fnerrors "fndeploy/internal/errors"
	"fndeploy/internal/settings"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration without deploying",
	Long: `Read the configuration document and run the same checks the deploy
loop runs first: every configured folder must exist as a directory in the
working directory, and the flag list must be non-empty. All offending
entries are reported together.`,
	RunE: runValidate,
}

func runValidate(c *cobra.Command, _ []string) error {
	s, err := settings.Load()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	doc, err := config.Load(s.ConfigFile)
	if err != nil {
		return fnerrors.NewFatal(err, "run 'fndeploy init' to create a configuration")
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

	fmt.Fprintf(c.OutOrStdout(), "%s is valid: %d folders, %d flags\n",
		s.ConfigFile, len(doc.FunctionFolders), len(doc.Flags))
	return nil
}
