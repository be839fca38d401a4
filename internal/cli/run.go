package cli

import (
	"github.com/smartpaper/sp/internal/launcher"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Launch the SmartPaper CLI, forwarding all arguments verbatim",
		Long: `Launch cli_get_prompt_mode_paper.py inside the project directory and
forward every argument to it, unmodified and in order. Flags are not parsed;
use this command when the forwarded arguments look like sp's own flags.`,
		// Everything after "run" belongs to the target script.
		DisableFlagParsing: true,
		RunE:               runLaunch,
	}
}

func runLaunch(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	return launcher.Run(proj, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}
