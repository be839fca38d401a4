package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartpaper/sp/internal/project"
)

// setupCheckout fabricates a SmartPaper checkout, points SP_PROJECT_ROOT at
// it, and isolates the config file. When pythonBody is non-empty a venv
// interpreter with that shell body is installed.
func setupCheckout(t *testing.T, pythonBody string) string {
	t.Helper()
	root := t.TempDir()

	script := filepath.Join(root, "cli_get_prompt_mode_paper.py")
	if err := os.WriteFile(script, []byte("# stub\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if pythonBody != "" {
		venvBin := filepath.Join(root, "venv", "bin")
		if err := os.MkdirAll(venvBin, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(venvBin, "python"), []byte(pythonBody), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	t.Setenv(project.EnvRoot, root)
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "config.toml"))
	return root
}

// execute runs the sp command tree with args, returning stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// restoreWD undoes the launcher's directory change after the test.
func restoreWD(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
