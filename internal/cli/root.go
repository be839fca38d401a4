package cli

import (
	"github.com/smartpaper/sp/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sp",
		Short:         "Launcher and history companion for a SmartPaper checkout",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runLaunch,
	}

	cmd.AddCommand(
		newRunCommand(),
		newHistoryCommand(),
		newBatchCommand(),
		newDoctorCommand(),
		newInitCommand(),
		newVersionCommand(),
	)

	return cmd
}
