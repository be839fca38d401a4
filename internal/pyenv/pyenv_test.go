package pyenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSelectPrefersVenvInterpreter(t *testing.T) {
	venv := filepath.Join(t.TempDir(), "python")
	if err := os.WriteFile(venv, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := Select(venv, "python3"); got != venv {
		t.Fatalf("Select = %q, want %q", got, venv)
	}
}

func TestSelectFallsBackWhenVenvMissing(t *testing.T) {
	venv := filepath.Join(t.TempDir(), "venv", "bin", "python")
	if got := Select(venv, "python3"); got != "python3" {
		t.Fatalf("Select = %q, want python3", got)
	}
}

func TestSelectIgnoresDirectoryAtVenvPath(t *testing.T) {
	dir := t.TempDir()
	if got := Select(dir, "python3"); got != "python3" {
		t.Fatalf("Select = %q, want python3", got)
	}
}

func TestProbeReportsVersion(t *testing.T) {
	fake := filepath.Join(t.TempDir(), "python")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\necho Python 3.12.0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	report, err := Probe(fake)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if report != "Python 3.12.0" {
		t.Fatalf("Probe = %q", report)
	}
}

func TestProbeFailsForMissingInterpreter(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Probe succeeded for a missing interpreter")
	}
	if !strings.Contains(err.Error(), "--version") {
		t.Fatalf("error does not mention the probe command: %v", err)
	}
}
