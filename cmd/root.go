// Package cmd implements the dirwalk command-line interface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexferrari88/dirwalk/internal/appconfig"
	"github.com/alexferrari88/dirwalk/internal/applog"
	"github.com/alexferrari88/dirwalk/internal/config"
	"github.com/alexferrari88/dirwalk/internal/excludes"
	"github.com/alexferrari88/dirwalk/internal/gitdiscover"
	"github.com/alexferrari88/dirwalk/internal/index"
	"github.com/alexferrari88/dirwalk/internal/pathspec"
	"github.com/alexferrari88/dirwalk/internal/report"
	"github.com/alexferrari88/dirwalk/internal/walk"
)

// runWalkFunc performs one walk over the resolved configuration and reports
// its outcome. It's a package-level variable so tests can swap it for a
// fake that never touches the filesystem.
var runWalkFunc = runWalk

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "dirwalk [path]",
	Short: "dirwalk classifies the files and directories of a git worktree.",
	Long: `dirwalk walks a directory tree the way "git status" would, classifying
every entry as tracked, ignored, untracked, or pruned, and folding a
directory of uniformly-classified entries into a single summary entry where
requested. path defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		applog.Init(cfg.Verbose)
		return nil
	},
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

		outcome, err := runWalkFunc(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		slog.Debug("walk complete",
			"read_dir_calls", outcome.ReadDirCalls,
			"seen_entries", outcome.SeenEntries,
			"returned_entries", outcome.ReturnedEntries)
		return nil
	},
}

// runWalk discovers the enclosing repository, assembles the walk.Context
// and walk.Options config describes, and runs the walk, printing one line
// per emitted entry to out.
func runWalk(cfg config.Config, out io.Writer) (walk.Outcome, error) {
	_, outcome, err := runWalkRecording(cfg, out)
	return outcome, err
}

// runWalkRecording performs the walk cfg describes, writing one line per
// emitted entry to out (a discardWriter silences that), and returns every
// entry recorded alongside the aggregate Outcome. It's the shared plumbing
// behind the root, tree, and diff commands.
func runWalkRecording(cfg config.Config, out io.Writer) ([]walk.Entry, walk.Outcome, error) {
	worktreeRoot := cfg.WorktreeRoot
	gitDirRealpath := ""
	if worktreeRoot == "" {
		root, gitDir, err := gitdiscover.Discover(cfg.TraversalRoot)
		if err != nil {
			return nil, walk.Outcome{}, fmt.Errorf("dirwalk: %w", err)
		}
		worktreeRoot, gitDirRealpath = root, gitDir
	}

	opts, err := cfg.WalkOptions()
	if err != nil {
		return nil, walk.Outcome{}, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, walk.Outcome{}, fmt.Errorf("dirwalk: getting working directory: %w", err)
	}

	var defaultIgnores []string
	if !cfg.NoDefaultIgnores {
		defaultIgnores = appconfig.DefaultIgnoreLines()
	}

	ctx := walk.Context{
		GitDirRealpath: gitDirRealpath,
		CurrentDir:     wd,
		Excludes:       excludes.NewStackWithDefaults(worktreeRoot, opts.IgnoreCase, defaultIgnores),
		Index:          index.New(nil),
		Pathspec:       pathspec.New(nil),
	}

	if cfg.IndexFile != "" {
		snap, err := index.LoadYAML(cfg.IndexFile)
		if err != nil {
			return nil, walk.Outcome{}, fmt.Errorf("dirwalk: loading index fixture %q: %w", cfg.IndexFile, err)
		}
		ctx.Index = snap
	}

	if cfg.PathspecFile != "" {
		patterns, err := readLines(cfg.PathspecFile)
		if err != nil {
			return nil, walk.Outcome{}, fmt.Errorf("dirwalk: loading pathspec file %q: %w", cfg.PathspecFile, err)
		}
		ctx.Pathspec = pathspec.New(patterns)
	}

	recorder := report.NewRecorder(out)
	outcome, err := walk.Walk(worktreeRoot, cfg.TraversalRoot, opts, ctx, recorder)
	return recorder.Entries, outcome, err
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range splitLines(string(data)) {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd, v)
	cobra.EnableCommandSorting = false
}
