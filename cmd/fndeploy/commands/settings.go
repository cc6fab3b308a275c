package commands

import (
	"github.com/spf13/cobra"

	fnerrors "fndeploy/internal/errors"
	"fndeploy/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the effective tool settings",
	Long: `Print the effective tool settings as YAML, after applying defaults,
any settings.yaml found in the current directory or the XDG config home,
and FNDEPLOY_* environment variables.`,
	RunE: runSettings,
}

func runSettings(c *cobra.Command, _ []string) error {
	s, err := settings.Load()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	data, err := s.YAML()
	if err != nil {
		return fnerrors.NewFatal(err, "")
	}

	c.OutOrStdout().Write(data)
	return nil
}
