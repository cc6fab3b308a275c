package commands

import (
	"errors"
	"strings"
	"testing"

	fnerrors "fndeploy/internal/errors"
)

func TestRunValidate_OK(t *testing.T) {
	setupProject(t, `{"functionFolders":["a","b"],"flags":["--trigger-http"]}`, "a", "b")

	c, out := newTestCmd(t)
	if err := runValidate(c, nil); err != nil {
		t.Fatalf("runValidate() error = %v", err)
	}
	if !strings.Contains(out.String(), "valid") {
		t.Errorf("output should confirm validity: %s", out.String())
	}
}

func TestRunValidate_MissingConfig(t *testing.T) {
	setupProject(t, "")

	c, _ := newTestCmd(t)
	err := runValidate(c, nil)
	if err == nil {
		t.Fatal("runValidate() must fail when no configuration exists")
	}

	var exitErr *fnerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if !strings.Contains(exitErr.Suggestion, "init") {
		t.Errorf("suggestion %q should point at fndeploy init", exitErr.Suggestion)
	}
}

func TestRunValidate_MissingFolder(t *testing.T) {
	setupProject(t, `{"functionFolders":["ghost"],"flags":["--trigger-http"]}`)

	c, _ := newTestCmd(t)
	err := runValidate(c, nil)
	if !errors.Is(err, fnerrors.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}
