package cli

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/smartpaper/sp/internal/launcher"
	"github.com/smartpaper/sp/internal/project"
)

func recordingPython(argsFile string) string {
	return "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + "\n"
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded argv: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestRunCommandForwardsArgs(t *testing.T) {
	restoreWD(t)
	argsFile := filepath.Join(t.TempDir(), "argv")
	setupCheckout(t, recordingPython(argsFile))

	if _, _, err := execute(t, "run", "--input", "paper.pdf", "--mode", "summary"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := []string{"./cli_get_prompt_mode_paper.py", "--input", "paper.pdf", "--mode", "summary"}
	if got := recordedArgs(t, argsFile); !reflect.DeepEqual(got, want) {
		t.Fatalf("child argv = %q, want %q", got, want)
	}
}

func TestBareRootDelegatesToRun(t *testing.T) {
	restoreWD(t)
	argsFile := filepath.Join(t.TempDir(), "argv")
	setupCheckout(t, recordingPython(argsFile))

	if _, _, err := execute(t, "https://arxiv.org/pdf/2403.00001"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := []string{"./cli_get_prompt_mode_paper.py", "https://arxiv.org/pdf/2403.00001"}
	if got := recordedArgs(t, argsFile); !reflect.DeepEqual(got, want) {
		t.Fatalf("child argv = %q, want %q", got, want)
	}
}

func TestRunCommandPropagatesExitCode(t *testing.T) {
	restoreWD(t)
	setupCheckout(t, "#!/bin/sh\nexit 3\n")

	_, _, err := execute(t, "run")

	var exitErr *launcher.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("execute = %v, want *launcher.ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Fatalf("Code = %d, want 3", exitErr.Code)
	}
}

func TestRunCommandMissingProject(t *testing.T) {
	restoreWD(t)
	t.Setenv(project.EnvRoot, filepath.Join(t.TempDir(), "gone"))
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "config.toml"))

	_, _, err := execute(t, "run")

	var exitErr *launcher.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("execute = %v, want *launcher.ExitError", err)
	}
	if exitErr.Code != launcher.ExitNoProject {
		t.Fatalf("Code = %d, want %d", exitErr.Code, launcher.ExitNoProject)
	}
}
