package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexferrari88/dirwalk/internal/config"
	"github.com/alexferrari88/dirwalk/internal/report"
)

// runTreeFunc walks cfg's target and renders it as a box-drawing tree. It's
// a package-level seam so tests can swap it for a fake.
var runTreeFunc = runTree

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Render the classified worktree as a directory tree.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		var traversalArg string
		if len(args) == 1 {
			traversalArg = args[0]
		}
		if err := config.ResolveRoots(&cfg, traversalArg); err != nil {
			return err
		}
		if _, err := cfg.WalkOptions(); err != nil {
			return err
		}
		return runTreeFunc(cfg, cmd.OutOrStdout())
	},
}

// runTree runs the same walk runWalk does, but renders the recorded entries
// as a tree instead of a flat listing.
func runTree(cfg config.Config, out io.Writer) error {
	entries, outcome, err := runWalkRecording(cfg, discardWriter{})
	if err != nil {
		return err
	}
	root := filepath.Base(cfg.TraversalRoot)
	fmt.Fprint(out, report.BuildTree(root, entries))
	fmt.Fprintf(out, "\n%d entries seen, %d emitted\n", outcome.SeenEntries, outcome.ReturnedEntries)
	return nil
}

// discardWriter silences the per-entry lines runWalkRecording's Recorder
// would otherwise print, for callers that only want the final entry slice.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func init() {
	rootCmd.AddCommand(treeCmd)
}
