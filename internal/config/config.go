// Package config resolves dirwalk's CLI flags, environment variables, and an
// optional .dirwalk.yaml into one walk.Options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

// Config mirrors walk.Options in flag-friendly, string-typed form.
type Config struct {
	WorktreeRoot      string `mapstructure:"worktree-root"`
	TraversalRoot     string `mapstructure:"traversal-root"`
	IndexFile         string `mapstructure:"index-file"`
	PathspecFile      string `mapstructure:"pathspec-file"`
	NoDefaultIgnores  bool   `mapstructure:"no-default-ignores"`
	Verbose           bool   `mapstructure:"verbose"`

	PrecomposeUnicode     bool   `mapstructure:"precompose-unicode"`
	IgnoreCase            bool   `mapstructure:"ignore-case"`
	RecurseRepositories   bool   `mapstructure:"recurse-repositories"`
	EmitPruned            bool   `mapstructure:"emit-pruned"`
	EmitIgnored           string `mapstructure:"emit-ignored"` // "", "matching", "collapse"
	CollapseIsForDeletion bool   `mapstructure:"collapse-is-for-deletion"`
	EmitTracked           bool   `mapstructure:"emit-tracked"`
	EmitUntracked         string `mapstructure:"emit-untracked"` // "matching" (default) or "collapse"
	EmitEmptyDirectories  bool   `mapstructure:"emit-empty-directories"`
}

// RegisterFlags attaches every dirwalk option as a persistent flag on cmd and
// binds each to a viper key of the same name, so .dirwalk.yaml and
// DIRWALK_* environment variables can also set it.
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) {
	fs := cmd.PersistentFlags()
	fs.Bool("precompose-unicode", false, "Normalize filesystem names to NFC before classifying them")
	fs.Bool("ignore-case", false, "Match the index and .git case-insensitively")
	fs.Bool("recurse-repositories", false, "Descend into nested repositories instead of reporting them as opaque")
	fs.Bool("emit-pruned", false, "Emit entries excluded by the pathspec")
	fs.String("emit-ignored", "", `How to emit ignored entries: "", "matching", or "collapse"`)
	fs.Bool("collapse-is-for-deletion", false, "Block collapsing a directory to Untracked if it holds precious-ignored content")
	fs.Bool("emit-tracked", false, "Emit entries already known to the index")
	fs.String("emit-untracked", "matching", `How to emit untracked entries: "matching" or "collapse"`)
	fs.Bool("emit-empty-directories", false, "Emit directories containing no file at any depth")
	fs.String("index-file", "", "YAML index fixture overriding the real .git index")
	fs.String("pathspec-file", "", "Newline-delimited pathspec patterns restricting the walk")
	fs.Bool("no-default-ignores", false, "Disable dirwalk's built-in ignore defaults (node_modules, build output, editor state, ...)")
	fs.BoolP("verbose", "v", false, "Enable verbose logging")

	v.BindPFlags(fs)
}

// Load merges .dirwalk.yaml (looked up in the working directory only; parent
// directories are not searched) and DIRWALK_*-prefixed environment variables
// into v, then unmarshals the result into a Config.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName(".dirwalk")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("DIRWALK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: reading .dirwalk.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding configuration: %w", err)
	}
	return cfg, nil
}

// WalkOptions translates Config into walk.Options, validating the
// string-typed emission-mode fields.
func (c Config) WalkOptions() (walk.Options, error) {
	opts := walk.Options{
		PrecomposeUnicode:     c.PrecomposeUnicode,
		IgnoreCase:            c.IgnoreCase,
		RecurseRepositories:   c.RecurseRepositories,
		EmitPruned:            c.EmitPruned,
		CollapseIsForDeletion: c.CollapseIsForDeletion,
		EmitTracked:           c.EmitTracked,
		EmitEmptyDirectories:  c.EmitEmptyDirectories,
	}

	untracked, err := parseEmissionMode(c.EmitUntracked, walk.EmissionMatching)
	if err != nil {
		return walk.Options{}, fmt.Errorf("config: emit-untracked: %w", err)
	}
	opts.EmitUntracked = untracked

	if c.EmitIgnored != "" {
		mode, err := parseEmissionMode(c.EmitIgnored, walk.EmissionMatching)
		if err != nil {
			return walk.Options{}, fmt.Errorf("config: emit-ignored: %w", err)
		}
		opts.EmitIgnored = &mode
	}
	return opts, nil
}

func parseEmissionMode(s string, fallback walk.EmissionMode) (walk.EmissionMode, error) {
	switch s {
	case "", "matching":
		return walk.EmissionMatching, nil
	case "collapse":
		return walk.EmissionCollapseDirectory, nil
	default:
		return fallback, fmt.Errorf("unknown emission mode %q, want \"matching\" or \"collapse\"", s)
	}
}

// ResolveRoots sets TraversalRoot to the absolute form of traversalArg, or to
// the current directory when neither the argument nor the configuration set
// it. WorktreeRoot is left as configured.
func ResolveRoots(cfg *Config, traversalArg string) error {
	if traversalArg != "" {
		abs, err := filepath.Abs(traversalArg)
		if err != nil {
			return fmt.Errorf("config: resolving traversal root %q: %w", traversalArg, err)
		}
		cfg.TraversalRoot = abs
	}
	if cfg.TraversalRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("config: getting working directory: %w", err)
		}
		cfg.TraversalRoot = wd
	}
	return nil
}
