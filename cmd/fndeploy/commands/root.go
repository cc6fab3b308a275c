// Package commands implements the CLI commands for fndeploy.
package commands

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"fndeploy/cmd"
	fnerrors "fndeploy/internal/errors"
	"fndeploy/internal/logging"
	"fndeploy/internal/settings"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

func init() {
	cobra.OnInitialize(settings.Init)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("fndeploy version {{.Version}}\n")

	// Silence errors and usage so main controls error output and codes.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "fndeploy",
	Short: "Sequential cloud-functions deployment from a project config",
	Long: `fndeploy reads a project-local fndeploy.json listing function source
folders and deployment flags, then runs the cloud-functions deploy command
for each folder in order, stopping at the first failure.

The first run in a project bootstraps the configuration interactively:
pick folders from the working directory, optionally seed the default
deploy flags, review the written file, and rerun.`,
	Example: `  # Deploy everything listed in fndeploy.json (bootstraps when absent)
  fndeploy

  # Recreate the configuration
  fndeploy init --force

  # Check the configuration without deploying
  fndeploy validate`,
	PersistentPreRunE: func(c *cobra.Command, _ []string) error {
		return setupLogging(c)
	},
	RunE: runDeploy,
}

// setupLogging configures the default logger from the verbosity flags.
func setupLogging(c *cobra.Command) error {
	if quiet && verbosity > 0 {
		return fnerrors.NewFatal(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: c.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command. Until flag parsing configures the real
// logger, anything logged (viper init, early failures) goes through the
// warn-level fallback.
func Execute() error {
	slog.SetDefault(logging.Default())
	return rootCmd.Execute()
}
