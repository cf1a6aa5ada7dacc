// Package index implements walk.Index over an in-memory, sorted snapshot of
// a git index, loadable from a YAML fixture for tests and the
// dump-index debug subcommand.
package index

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

// Entry is the YAML-friendly mirror of walk.IndexEntry.
type Entry struct {
	Path         string `yaml:"path"`
	Mode         string `yaml:"mode"` // file | symlink | submodule
	UpToDate     bool   `yaml:"up_to_date"`
	SkipWorktree bool   `yaml:"skip_worktree"`
	Sparse       bool   `yaml:"sparse"`
}

// Fixture is the top-level shape of a YAML index fixture.
type Fixture struct {
	Entries []Entry `yaml:"entries"`
}

// Snapshot is a read-only, path-sorted view of index entries supporting the
// exact and prefix lookups walk.Index requires.
type Snapshot struct {
	byPath map[string]walk.IndexEntry
	sorted []string
}

// LoadYAML reads a Fixture from path and builds a Snapshot from it.
func LoadYAML(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, err
	}
	return New(fx.Entries), nil
}

// New builds a Snapshot from Entry values.
func New(entries []Entry) *Snapshot {
	s := &Snapshot{byPath: make(map[string]walk.IndexEntry, len(entries))}
	for _, e := range entries {
		s.byPath[e.Path] = walk.IndexEntry{
			Path:         e.Path,
			Mode:         modeFromString(e.Mode),
			UpToDate:     e.UpToDate,
			SkipWorktree: e.SkipWorktree,
			Sparse:       e.Sparse,
		}
		s.sorted = append(s.sorted, e.Path)
	}
	sort.Strings(s.sorted)
	return s
}

func modeFromString(m string) walk.IndexEntryMode {
	switch strings.ToLower(m) {
	case "symlink":
		return walk.IndexEntryModeSymlink
	case "submodule", "gitlink":
		return walk.IndexEntryModeSubmodule
	case "file", "":
		return walk.IndexEntryModeFile
	default:
		return walk.IndexEntryModeNone
	}
}

// EntryByPath implements walk.Index.
func (s *Snapshot) EntryByPath(path string, ignoreCase bool) (walk.IndexEntry, bool) {
	if !ignoreCase {
		e, ok := s.byPath[path]
		return e, ok
	}
	for p, e := range s.byPath {
		if strings.EqualFold(p, path) {
			return e, true
		}
	}
	return walk.IndexEntry{}, false
}

// EntriesWithPrefix implements walk.Index: every entry whose path falls
// under prefix+"/", in path order. Every key in the sorted slice is checked.
func (s *Snapshot) EntriesWithPrefix(prefix string, ignoreCase bool) []walk.IndexEntry {
	want := prefix + "/"
	var out []walk.IndexEntry
	for _, p := range s.sorted {
		if matchesPrefix(p, want, ignoreCase) {
			out = append(out, s.byPath[p])
		}
	}
	return out
}

func matchesPrefix(path, want string, ignoreCase bool) bool {
	if len(path) <= len(want) {
		return false
	}
	if ignoreCase {
		return strings.EqualFold(path[:len(want)], want)
	}
	return strings.HasPrefix(path, want)
}

// Len reports the number of entries in the snapshot.
func (s *Snapshot) Len() int { return len(s.sorted) }

// All returns every entry, sorted by path.
func (s *Snapshot) All() []walk.IndexEntry {
	out := make([]walk.IndexEntry, 0, len(s.sorted))
	for _, p := range s.sorted {
		out = append(out, s.byPath[p])
	}
	return out
}
