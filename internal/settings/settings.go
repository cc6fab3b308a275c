// Package settings provides operator-level tool settings for fndeploy
// using Viper.
//
// Settings are distinct from the per-project configuration document: they
// tune how the tool itself behaves (which deploy command to run, what the
// config file is called, which editor to launch) rather than what gets
// deployed. They come from settings.yaml in the current directory or under
// the XDG config home, with FNDEPLOY_* environment variables taking
// precedence. Everything has a default, so no settings file is required.
package settings

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"fndeploy/internal/config"
)

// AppName is the application name used for the settings directory.
const AppName = "fndeploy"

// Settings holds the tool-level settings.
type Settings struct {
	// ConfigFile is the name of the per-project configuration document,
	// resolved relative to the working directory.
	ConfigFile string `mapstructure:"config_file" yaml:"config_file"`

	// DeployCommand is the command prefix the runner invokes per folder.
	// The folder name and the configured flags are appended to it.
	DeployCommand string `mapstructure:"deploy_command" yaml:"deploy_command"`

	// Editor is the command used to open the configuration file after
	// bootstrap when running inside the VS Code integrated terminal.
	Editor string `mapstructure:"editor" yaml:"editor"`
}

// Init initializes Viper with defaults and search paths. Call once at
// startup before Load.
func Init() {
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("FNDEPLOY")
	viper.AutomaticEnv()

	viper.SetDefault("config_file", config.DefaultFileName)
	viper.SetDefault("deploy_command", "gcloud functions deploy")
	viper.SetDefault("editor", "code")
}

// Load reads the settings file if one exists and returns the effective
// settings. A missing file is fine (defaults apply); a malformed one is an
// error.
func Load() (*Settings, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	return &s, nil
}

// YAML renders the effective settings as a YAML document, the format the
// settings file itself uses.
func (s *Settings) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling settings")
	}
	return data, nil
}
