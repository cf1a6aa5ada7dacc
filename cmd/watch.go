package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexferrari88/dirwalk/internal/config"
)

// runWatchFunc re-runs the walk every time the traversal root changes on
// disk, until stop is closed. A package-level seam so tests can swap it.
var runWatchFunc = runWatch

// watchDebounce coalesces a burst of filesystem events (an editor's
// save-via-rename, a git checkout touching dozens of files) into one walk.
const watchDebounce = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-run the walk every time a file under path changes.",
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
		return runWatchFunc(cfg, cmd.OutOrStdout(), cmd.Context().Done())
	},
}

// runWatch watches cfg.TraversalRoot recursively, triggering runWalkFunc
// once up front and again after each debounced burst of change events,
// until stop fires.
func runWatch(cfg config.Config, out io.Writer, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dirwalk: creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, cfg.TraversalRoot); err != nil {
		return fmt.Errorf("dirwalk: watching %q: %w", cfg.TraversalRoot, err)
	}

	if _, err := runWalkFunc(cfg, out); err != nil {
		return err
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-stop:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch: filesystem notification error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				addRecursive(watcher, event.Name)
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			if _, err := runWalkFunc(cfg, out); err != nil {
				slog.Warn("watch: walk failed", "error", err)
			}
		}
	}
}

// addRecursive subscribes watcher to root and every directory beneath it;
// fsnotify itself only watches one level at a time.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
