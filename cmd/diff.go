package cmd

import (
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/alexferrari88/dirwalk/internal/config"
	"github.com/alexferrari88/dirwalk/internal/report"
	"github.com/alexferrari88/dirwalk/internal/walk"
)

// runDiffFunc walks two traversal roots and renders a unified diff of their
// rendered entry listings. A package-level seam so tests can swap it.
var runDiffFunc = runDiff

var diffCmd = &cobra.Command{
	Use:   "diff <old-path> <new-path>",
	Short: "Show how two worktree paths classify differently.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldCfg, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := config.ResolveRoots(&oldCfg, args[0]); err != nil {
			return err
		}

		newCfg, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := config.ResolveRoots(&newCfg, args[1]); err != nil {
			return err
		}

		return runDiffFunc(oldCfg, newCfg, cmd.OutOrStdout())
	},
}

func runDiff(oldCfg, newCfg config.Config, out io.Writer) error {
	oldEntries, _, err := runWalkRecording(oldCfg, discardWriter{})
	if err != nil {
		return fmt.Errorf("dirwalk: walking %q: %w", oldCfg.TraversalRoot, err)
	}
	newEntries, _, err := runWalkRecording(newCfg, discardWriter{})
	if err != nil {
		return fmt.Errorf("dirwalk: walking %q: %w", newCfg.TraversalRoot, err)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(linesOf(oldEntries)),
		B:        difflib.SplitLines(linesOf(newEntries)),
		FromFile: oldCfg.TraversalRoot,
		ToFile:   newCfg.TraversalRoot,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("dirwalk: building diff: %w", err)
	}
	if text == "" {
		fmt.Fprintln(out, "no differences")
		return nil
	}
	fmt.Fprint(out, text)
	return nil
}

func linesOf(entries []walk.Entry) string {
	var buf report.LineBuffer
	for _, e := range entries {
		buf.AddEntry(e)
	}
	return buf.String()
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
