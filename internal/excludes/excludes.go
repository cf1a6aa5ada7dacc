// Package excludes implements the walk.ExcludesStack interface on top of
// .gitignore files, the same engine the teacher uses for its own exclusion
// checks, but organized as a lazily-populated per-directory cache consulted
// from the worktree root down, a deeper directory's match taking precedence
// the way git itself resolves stacked ignore files.
package excludes

import (
	"os"
	"path"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

// compiled holds the two matchers derived from one directory's .gitignore:
// ordinary expendable patterns, and patterns marked precious with a leading
// "!!" (dirwalk's convention for "ignored, but never safe to delete").
type compiled struct {
	expendable *ignore.GitIgnore
	precious   *ignore.GitIgnore
}

// Stack is a worktree-rooted, caching .gitignore matcher stack. It is safe
// for concurrent use; a single Stack is normally shared across a whole walk.
type Stack struct {
	worktreeRoot string
	ignoreCase   bool
	defaultLines []string

	mu    sync.Mutex
	cache map[string]*compiled // keyed by worktree-relative directory path, "" for root
}

// NewStack builds an excludes stack rooted at worktreeRoot.
func NewStack(worktreeRoot string, ignoreCase bool) *Stack {
	return NewStackWithDefaults(worktreeRoot, ignoreCase, nil)
}

// NewStackWithDefaults builds an excludes stack seeded with defaultIgnoreLines,
// compiled as though they were the leading lines of the worktree root's own
// .gitignore: a negation in the real root .gitignore can still override
// them, since both sets of lines feed the same underlying matcher, the way
// a project's own rules override dirwalk's built-in ones.
func NewStackWithDefaults(worktreeRoot string, ignoreCase bool, defaultIgnoreLines []string) *Stack {
	return &Stack{
		worktreeRoot: worktreeRoot,
		ignoreCase:   ignoreCase,
		defaultLines: defaultIgnoreLines,
		cache:        map[string]*compiled{},
	}
}

// AtEntry implements walk.ExcludesStack. relaPath is worktree-relative and
// '/'-separated.
//
// Every ancestor directory's .gitignore that applies to relaPath is
// consulted from the worktree root down to relaPath's own directory; a
// deeper directory's match overrides a shallower one, the same precedence a
// more specific pattern gets in git. A directory with no .gitignore, or
// whose patterns don't match, leaves the inherited decision untouched.
func (s *Stack) AtEntry(relaPath string, isDir *bool) (walk.IgnoreKind, bool, error) {
	dirs := ancestorDirs(path.Dir(relaPath))

	var kind walk.IgnoreKind
	var excluded bool
	for _, dir := range dirs {
		c, err := s.compiledFor(dir)
		if err != nil {
			return 0, false, err
		}
		if c == nil {
			continue
		}
		rel := relaPath
		if dir != "" {
			rel = strings.TrimPrefix(relaPath, dir+"/")
		}
		if c.precious != nil && c.precious.MatchesPath(rel) {
			kind, excluded = walk.IgnorePrecious, true
		} else if c.expendable != nil && c.expendable.MatchesPath(rel) {
			kind, excluded = walk.IgnoreExpendable, true
		}
	}
	return kind, excluded, nil
}

// ancestorDirs returns dir's ancestor chain from the worktree root ("")
// down to dir itself, inclusive.
func ancestorDirs(dir string) []string {
	if dir == "." {
		dir = ""
	}
	if dir == "" {
		return []string{""}
	}
	parts := strings.Split(dir, "/")
	dirs := make([]string, 0, len(parts)+1)
	dirs = append(dirs, "")
	for i := range parts {
		dirs = append(dirs, strings.Join(parts[:i+1], "/"))
	}
	return dirs
}

func (s *Stack) compiledFor(dir string) (*compiled, error) {
	s.mu.Lock()
	if c, ok := s.cache[dir]; ok {
		s.mu.Unlock()
		return c, nil
	}
	s.mu.Unlock()

	fsDir := s.worktreeRoot
	if dir != "" {
		fsDir = s.worktreeRoot + string(os.PathSeparator) + filepathFromSlash(dir)
	}
	data, err := os.ReadFile(fsDir + string(os.PathSeparator) + ".gitignore")
	var lines []string
	if dir == "" {
		lines = append(lines, s.defaultLines...)
	}
	if err == nil {
		lines = append(lines, strings.Split(string(data), "\n")...)
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	var c *compiled
	if len(lines) > 0 {
		c = compileLines(lines)
	}

	s.mu.Lock()
	s.cache[dir] = c
	s.mu.Unlock()
	return c, nil
}

func compileLines(lines []string) *compiled {
	var expendable, precious []string
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(trimmed), "!!") {
			precious = append(precious, strings.Replace(trimmed, "!!", "", 1))
			continue
		}
		expendable = append(expendable, trimmed)
	}
	c := &compiled{}
	if len(expendable) > 0 {
		c.expendable = ignore.CompileIgnoreLines(expendable...)
	}
	if len(precious) > 0 {
		c.precious = ignore.CompileIgnoreLines(precious...)
	}
	return c
}

func filepathFromSlash(p string) string {
	if os.PathSeparator == '/' {
		return p
	}
	return strings.ReplaceAll(p, "/", string(os.PathSeparator))
}
