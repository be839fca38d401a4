package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/smartpaper/sp/internal/history"
	"github.com/smartpaper/sp/internal/project"
	"github.com/smartpaper/sp/internal/pyenv"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose sp prerequisites and checkout issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorContext struct {
	Project *project.Project
}

type doctorCheck struct {
	Name string
	Fn   func(*doctorContext) error
}

func runDoctor(cmd *cobra.Command, verbose bool) error {
	ctx := &doctorContext{}
	checks := []doctorCheck{
		{Name: "project checkout", Fn: func(c *doctorContext) error {
			proj, err := loadProject()
			if err != nil {
				return err
			}
			if fi, err := os.Stat(proj.Root); err != nil || !fi.IsDir() {
				return fmt.Errorf("project directory missing: %s", proj.Root)
			}
			c.Project = proj
			return nil
		}},
		{Name: "target script present", Fn: func(c *doctorContext) error {
			if c.Project == nil {
				return errors.New("checkout not resolved")
			}
			script := filepath.Join(c.Project.Root, c.Project.Config.Script)
			if _, err := os.Stat(script); err != nil {
				return fmt.Errorf("%s not found", script)
			}
			return nil
		}},
		{Name: "fallback interpreter on PATH", Fn: func(c *doctorContext) error {
			python := "python3"
			if c.Project != nil {
				python = c.Project.Config.Python
			}
			if _, err := exec.LookPath(python); err != nil {
				return fmt.Errorf("%s not found on PATH", python)
			}
			return nil
		}},
		{Name: "interpreter responds", Fn: func(c *doctorContext) error {
			if c.Project == nil {
				return errors.New("checkout not resolved")
			}
			python := pyenv.Select(c.Project.VenvPython(), c.Project.Config.Python)
			report, err := pyenv.Probe(python)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "  using %s (%s)\n", python, report)
			}
			return nil
		}},
		{Name: "history storage usable", Fn: func(c *doctorContext) error {
			if c.Project == nil {
				return errors.New("checkout not resolved")
			}
			if _, err := history.Open(c.Project.StorageDir()); err != nil {
				return err
			}
			return nil
		}},
	}

	var failures []string
	for _, check := range checks {
		if err := check.Fn(ctx); err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "healthy!")
	return nil
}
