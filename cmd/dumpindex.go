package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexferrari88/dirwalk/internal/index"
)

// runDumpIndexFunc loads an index fixture and prints one line per entry. A
// package-level seam so tests can swap it.
var runDumpIndexFunc = runDumpIndex

var dumpIndexCmd = &cobra.Command{
	Use:   "dump-index <index-file>",
	Short: "Print every entry of a YAML index fixture, for debugging --index-file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDumpIndexFunc(args[0], cmd.OutOrStdout())
	},
}

func runDumpIndex(path string, out io.Writer) error {
	snap, err := index.LoadYAML(path)
	if err != nil {
		return fmt.Errorf("dirwalk: loading index fixture %q: %w", path, err)
	}
	fmt.Fprintf(out, "%d entries\n", snap.Len())
	for _, e := range snap.All() {
		fmt.Fprintf(out, "%s\n", e.Path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(dumpIndexCmd)
}
