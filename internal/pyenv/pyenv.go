package pyenv

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Select picks the interpreter for a launch. The project-local venv
// interpreter wins when it exists on disk; otherwise the bare fallback name
// is returned for the exec layer to resolve through PATH. A missing fallback
// is not detected here: the launch itself reports it.
func Select(venvPython, fallback string) string {
	if fi, err := os.Stat(venvPython); err == nil && !fi.IsDir() {
		return venvPython
	}
	return fallback
}

// Probe runs `python --version` and returns the trimmed report. Older
// interpreters print the version to stderr, so both streams are captured.
func Probe(python string) (string, error) {
	cmd := exec.Command(python, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s --version: %v\n%s", python, err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
