package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"fndeploy/internal/cli/prompt"
	"fndeploy/internal/config"
	fnerrors "fndeploy/internal/errors"
	"fndeploy/internal/logging"
)

// scriptedConfirmer answers Confirm calls from a fixed list.
type scriptedConfirmer struct {
	answers []bool
	calls   int
}

func (s *scriptedConfirmer) Confirm(string, bool) (bool, error) {
	if s.calls >= len(s.answers) {
		return false, errors.New("unexpected Confirm call")
	}
	answer := s.answers[s.calls]
	s.calls++
	return answer, nil
}

func newFlow(t *testing.T, workDir string, confirmer *scriptedConfirmer, selected []string) (*Flow, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Flow{
		ConfigPath: filepath.Join(workDir, config.DefaultFileName),
		WorkDir:    workDir,
		Out:        &out,
		Logger:     logging.ForTest(t),
		Prompter:   confirmer,
		SelectFolders: func(_ string, _ []prompt.Choice) ([]string, error) {
			return selected, nil
		},
	}, &out
}

func TestRun_Declined(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "orders"), 0o755); err != nil {
		t.Fatal(err)
	}

	flow, out := newFlow(t, dir, &scriptedConfirmer{answers: []bool{false}}, nil)

	outcome, err := flow.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if outcome != Declined {
		t.Errorf("outcome = %v, want Declined", outcome)
	}

	if _, err := os.Stat(flow.ConfigPath); !os.IsNotExist(err) {
		t.Error("declining must not write a config file")
	}
	if !strings.Contains(out.String(), "Aborted") {
		t.Errorf("output should acknowledge the decline: %s", out.String())
	}
}

func TestRun_AcceptWithDefaults(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x", "y"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	flow, _ := newFlow(t, dir, &scriptedConfirmer{answers: []bool{true, true}}, []string{"x"})

	outcome, err := flow.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if outcome != Created {
		t.Errorf("outcome = %v, want Created", outcome)
	}

	doc, err := config.Load(flow.ConfigPath)
	if err != nil {
		t.Fatalf("written config unreadable: %v", err)
	}
	if !reflect.DeepEqual(doc.FunctionFolders, []string{"x"}) {
		t.Errorf("FunctionFolders = %v, want [x]", doc.FunctionFolders)
	}
	if !reflect.DeepEqual(doc.Flags, config.DefaultDeployFlags) {
		t.Errorf("Flags = %v, want the default flag set", doc.Flags)
	}
}

func TestRun_AcceptWithoutDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "orders"), 0o755); err != nil {
		t.Fatal(err)
	}

	flow, _ := newFlow(t, dir, &scriptedConfirmer{answers: []bool{true, false}}, []string{"orders"})

	if _, err := flow.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	doc, err := config.Load(flow.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Flags) != 0 {
		t.Errorf("Flags = %v, want empty when defaults are refused", doc.Flags)
	}
}

func TestRun_EmptySelectionPermitted(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "orders"), 0o755); err != nil {
		t.Fatal(err)
	}

	flow, _ := newFlow(t, dir, &scriptedConfirmer{answers: []bool{true, true}}, nil)

	outcome, err := flow.Run()
	if err != nil {
		t.Fatalf("empty selection must not fail bootstrap: %v", err)
	}
	if outcome != Created {
		t.Errorf("outcome = %v, want Created", outcome)
	}

	doc, err := config.Load(flow.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.FunctionFolders) != 0 {
		t.Errorf("FunctionFolders = %v, want empty", doc.FunctionFolders)
	}
}

func TestRun_OffersOnlyDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "orders"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var offered []prompt.Choice
	flow, _ := newFlow(t, dir, &scriptedConfirmer{answers: []bool{true, true}}, nil)
	flow.SelectFolders = func(_ string, choices []prompt.Choice) ([]string, error) {
		offered = choices
		return nil, nil
	}

	if _, err := flow.Run(); err != nil {
		t.Fatal(err)
	}

	if len(offered) != 1 || offered[0].Title != "orders" || offered[0].Value != "orders" {
		t.Errorf("choices = %v, want exactly the orders directory with title == value", offered)
	}
}

func TestRun_EditorLaunchFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "orders"), 0o755); err != nil {
		t.Fatal(err)
	}

	flow, _ := newFlow(t, dir, &scriptedConfirmer{answers: []bool{true, true}}, []string{"orders"})
	flow.OpenEditor = func(string) error { return errors.New("code: command not found") }

	outcome, err := flow.Run()
	if !errors.Is(err, fnerrors.ErrEditorLaunch) {
		t.Errorf("error = %v, want ErrEditorLaunch", err)
	}
	if outcome != Created {
		t.Errorf("outcome = %v, want Created (the file was written before the launch)", outcome)
	}

	if _, statErr := os.Stat(flow.ConfigPath); statErr != nil {
		t.Error("config file should exist even when the editor launch fails")
	}
}

func TestRun_ManualEditInstructionsWithoutEditor(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "orders"), 0o755); err != nil {
		t.Fatal(err)
	}

	flow, out := newFlow(t, dir, &scriptedConfirmer{answers: []bool{true, true}}, []string{"orders"})

	if _, err := flow.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "rerun") {
		t.Errorf("output should instruct the user to edit and rerun: %s", out.String())
	}
}
