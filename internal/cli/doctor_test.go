package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartpaper/sp/internal/config"
	"github.com/smartpaper/sp/internal/project"
)

const respondingPython = "#!/bin/sh\necho Python 3.12.0\n"

func TestDoctorHealthy(t *testing.T) {
	root := setupCheckout(t, respondingPython)

	// The fallback check must not depend on the host having python3; point
	// it at the venv interpreter through the config file.
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default(root)
	cfg.Python = filepath.Join(root, "venv", "bin", "python")
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envConfig, cfgPath)

	stdout, stderr, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("execute: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "healthy!") {
		t.Fatalf("output = %q", stdout)
	}
}

func TestDoctorReportsMissingScript(t *testing.T) {
	root := t.TempDir() // a checkout without the target script
	t.Setenv(project.EnvRoot, root)
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "config.toml"))

	_, stderr, err := execute(t, "doctor")
	if err == nil || !strings.Contains(err.Error(), "doctor checks failed") {
		t.Fatalf("execute = %v", err)
	}
	if !strings.Contains(stderr, "target script present") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestDoctorVerboseShowsPasses(t *testing.T) {
	root := setupCheckout(t, respondingPython)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default(root)
	cfg.Python = filepath.Join(root, "venv", "bin", "python")
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envConfig, cfgPath)

	stdout, _, err := execute(t, "doctor", "-v")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "✓ project checkout") {
		t.Fatalf("output = %q", stdout)
	}
	if !strings.Contains(stdout, "Python 3.12.0") {
		t.Fatalf("interpreter report missing:\n%s", stdout)
	}
}
