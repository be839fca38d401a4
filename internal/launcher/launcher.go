// Package launcher starts the SmartPaper command line script with the
// arguments it was handed, untouched. The launcher owns exactly one failure
// of its own, the project directory change; everything downstream (missing
// interpreter, missing script, script errors) is the child's to report.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/smartpaper/sp/internal/project"
	"github.com/smartpaper/sp/internal/pyenv"
)

const (
	// ExitFailure is the generic launcher-side failure code.
	ExitFailure = 1
	// ExitNoProject is returned when the project directory change fails.
	ExitNoProject = 2
)

// ExitError carries a process exit code through the error chain so main can
// terminate with it. A zero-value Err means the child already reported the
// failure and nothing further should be printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Command builds the launch invocation for proj: the selected interpreter,
// the target script, then args verbatim and in order.
func Command(proj *project.Project, args []string) *exec.Cmd {
	python := pyenv.Select(proj.VenvPython(), proj.Config.Python)
	return exec.Command(python, append([]string{proj.ScriptPath()}, args...)...)
}

// Run changes into the project directory and executes the target script with
// inherited stdio, forwarding SIGINT/SIGTERM to the child while it runs. The
// returned error is an *ExitError carrying the child's exit code when the
// child fails, or ExitNoProject when the directory change fails.
func Run(proj *project.Project, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := os.Chdir(proj.Root); err != nil {
		return &ExitError{
			Code: ExitNoProject,
			Err:  fmt.Errorf("enter project directory %s: %w", proj.Root, err),
		}
	}

	cmd := Command(proj, args)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", proj.Config.Script, err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigc:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	signal.Stop(sigc)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitCode(exitErr)}
		}
		return fmt.Errorf("wait for %s: %w", proj.Config.Script, err)
	}
	return nil
}

// exitCode maps a child failure to the status a shell would report: the
// plain exit code, or 128+signal when the child died from a signal.
// ExitCode alone returns -1 for signal deaths, which os.Exit would turn
// into 255 and lose which signal killed the child.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}
