package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/smartpaper/sp/internal/launcher"
	"github.com/smartpaper/sp/internal/naming"
	"github.com/smartpaper/sp/internal/prompts"
	"github.com/spf13/cobra"
)

var (
	colorBatchOK   = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorBatchFail = color.New(color.FgHiRed, color.Bold).SprintFunc()
)

func newBatchCommand() *cobra.Command {
	opts := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Analyze every PDF under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "prompt template name (defaults from config)")
	return cmd
}

type batchOptions struct {
	prompt string
}

func runBatch(cmd *cobra.Command, opts *batchOptions, dir string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return fmt.Errorf("directory not found: %s", dir)
	}

	prompt := opts.prompt
	if prompt == "" {
		prompt = proj.Config.Batch.Prompt
	}
	if err := validatePrompt(proj.PromptsFile(), prompt); err != nil {
		return err
	}

	papers, err := findPDFs(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(papers) == 0 {
		fmt.Fprintf(out, "No PDFs found under %s\n", dir)
		return nil
	}

	label, err := naming.RunLabel()
	if err != nil {
		return err
	}
	useColor := writerIsTerminal(out)

	fmt.Fprintf(out, "Batch run %s: %d papers under %s (prompt %s)\n", label, len(papers), dir, prompt)

	failed := 0
	for i, paper := range papers {
		fmt.Fprintf(out, "[%s %d/%d] %s\n", label, i+1, len(papers), paper)
		err := launcher.Run(proj, []string{paper, "--prompt", prompt},
			cmd.InOrStdin(), out, cmd.ErrOrStderr())
		if err != nil {
			failed++
			msg := fmt.Sprintf("failed: %s: %v", filepath.Base(paper), err)
			if useColor {
				msg = colorBatchFail(msg)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
	}

	summary := fmt.Sprintf("Batch run %s complete: %d analyzed, %d failed", label, len(papers)-failed, failed)
	if useColor {
		if failed == 0 {
			summary = colorBatchOK(summary)
		} else {
			summary = colorBatchFail(summary)
		}
	}
	fmt.Fprintln(out, summary)

	if failed > 0 {
		return fmt.Errorf("%d of %d papers failed", failed, len(papers))
	}
	return nil
}

func validatePrompt(promptsFile, name string) error {
	names, err := prompts.Names(promptsFile)
	if err != nil {
		return err
	}
	// No catalog on disk means no validation; the wrapped script decides.
	if len(names) == 0 {
		return nil
	}
	if slices.Contains(names, name) {
		return nil
	}
	return fmt.Errorf("unknown prompt template %q (available: %s)", name, strings.Join(names, ", "))
}

func findPDFs(dir string) ([]string, error) {
	var papers []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			papers = append(papers, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	slices.Sort(papers)
	return papers, nil
}
