package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/smartpaper/sp/internal/history"
	"github.com/smartpaper/sp/internal/timefmt"
	"github.com/spf13/cobra"
)

const sourceColumnWidth = 38

var (
	colorHistoryHeader = color.New(color.FgBlue, color.Bold).SprintFunc()
	colorHistoryAge    = color.New(color.FgHiBlack).SprintFunc()
	colorHistoryPrompt = color.New(color.FgMagenta).SprintFunc()
)

func newHistoryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved paper analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to show")
	cmd.AddCommand(newHistoryShowCommand())
	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "show <source>",
		Short: "Print the cached analysis for a paper source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, args[0], prompt)
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt template name (defaults from config)")
	return cmd
}

func runHistoryShow(cmd *cobra.Command, source, prompt string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	if prompt == "" {
		prompt = proj.Config.Batch.Prompt
	}

	mgr, err := history.Open(proj.StorageDir())
	if err != nil {
		return err
	}
	hit, ok := mgr.Lookup(history.ComputeHash(source), prompt)
	if !ok {
		return fmt.Errorf("no cached analysis for %s (prompt %s)", source, prompt)
	}
	fmt.Fprint(cmd.OutOrStdout(), hit.Content)
	return nil
}

func runHistory(cmd *cobra.Command, limit int) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	mgr, err := history.Open(proj.StorageDir())
	if err != nil {
		return err
	}

	entries := mgr.List()
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history found.")
		return nil
	}

	shown := len(entries)
	if limit > 0 && limit < shown {
		shown = limit
	}
	fmt.Fprintf(out, "Found %d records. Showing last %d:\n\n", len(entries), shown)

	useColor := writerIsTerminal(out)
	now := currentTimeOverride()

	header := historyRow("ID", "Date", "Age", "Prompt", "Source")
	if useColor {
		header = colorHistoryHeader(header)
	}
	fmt.Fprintln(out, header)
	fmt.Fprintln(out, strings.Repeat("-", 4+20+12+16+sourceColumnWidth))

	for i, entry := range entries[:shown] {
		age := timefmt.Age(entry.Time(), now)
		prompt := entry.PromptName
		if useColor {
			age = colorHistoryAge(runewidth.FillRight(age, 12))
			prompt = colorHistoryPrompt(runewidth.FillRight(prompt, 16))
		}
		fmt.Fprintln(out, historyRow(
			fmt.Sprintf("%d", i+1),
			timefmt.Stamp(entry.Time()),
			age,
			prompt,
			displaySource(entry.OriginalSource),
		))
	}

	fmt.Fprintln(out, "\nUse 'sp history show <source>' to view a cached analysis.")
	return nil
}

// historyRow pads cells before any coloring so ANSI codes never skew widths.
// Cells already padded (colored age/prompt) pass through FillRight unchanged.
func historyRow(id, date, age, prompt, source string) string {
	return runewidth.FillRight(id, 4) +
		runewidth.FillRight(date, 20) +
		runewidth.FillRight(age, 12) +
		runewidth.FillRight(prompt, 16) +
		source
}

// displaySource reduces path-like sources to their basename and keeps the
// column narrow, the way the Python history listing did.
func displaySource(source string) string {
	if strings.Contains(source, "/") || fileExists(source) {
		source = filepath.Base(source)
	}
	return runewidth.Truncate(source, sourceColumnWidth, "...")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
