package settings

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	Init()

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fndeploy.json", s.ConfigFile)
	assert.Equal(t, "gcloud functions deploy", s.DeployCommand)
	assert.Equal(t, "code", s.Editor)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("FNDEPLOY_DEPLOY_COMMAND", "firebase deploy --only")
	Init()

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "firebase deploy --only", s.DeployCommand)
	assert.Equal(t, "fndeploy.json", s.ConfigFile, "unrelated keys keep defaults")
}

func TestYAML(t *testing.T) {
	s := &Settings{
		ConfigFile:    "fndeploy.json",
		DeployCommand: "gcloud functions deploy",
		Editor:        "code",
	}

	data, err := s.YAML()
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.Contains(out, "config_file: fndeploy.json"), out)
	assert.True(t, strings.Contains(out, "deploy_command: gcloud functions deploy"), out)
	assert.True(t, strings.Contains(out, "editor: code"), out)
}
