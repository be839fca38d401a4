package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartpaper/sp/internal/config"
	"github.com/smartpaper/sp/internal/project"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter sp configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, root)
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "SmartPaper checkout to record as project_root")
	return cmd
}

func runInit(cmd *cobra.Command, root string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "sp already configured at %s\n", path)
		return nil
	}

	if root == "" {
		root = project.DefaultRoot()
	} else {
		if root, err = filepath.Abs(root); err != nil {
			return err
		}
	}

	if err := config.Save(path, config.Default(root)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (project_root %s)\n", path, root)
	return nil
}
