// Package pathspec implements walk.Pathspec using doublestar glob patterns,
// git pathspec's closest general-purpose analogue.
package pathspec

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

type pattern struct {
	glob   string
	negate bool
	prefix string // longest literal prefix before the first wildcard
}

// Matcher is a set of glob patterns, later patterns overriding earlier ones
// for a given path, mirroring gitignore-style pathspec precedence. A Matcher
// with no patterns admits everything.
type Matcher struct {
	patterns []pattern
}

// New compiles specs, a pathspec-like list where a leading "!" negates a
// pattern (excludes rather than includes a match).
func New(specs []string) *Matcher {
	m := &Matcher{}
	for _, s := range specs {
		negate := strings.HasPrefix(s, "!")
		glob := strings.TrimPrefix(s, "!")
		m.patterns = append(m.patterns, pattern{glob: glob, negate: negate, prefix: literalPrefix(glob)})
	}
	return m
}

// CanMatchRelativePath is the cheap admissibility probe: true if path itself
// could match, or if path is an ancestor directory of some pattern's literal
// prefix (so a descendant might still match).
func (m *Matcher) CanMatchRelativePath(path string, isDir *bool) bool {
	if len(m.patterns) == 0 {
		return true
	}
	for _, p := range m.patterns {
		if p.negate {
			continue
		}
		if ok, _ := doublestar.Match(p.glob, path); ok {
			return true
		}
		if strings.HasPrefix(p.prefix, path+"/") || path == "" || strings.HasPrefix(path+"/", p.prefix+"/") {
			return true
		}
	}
	return false
}

// PatternMatchingRelativePath is the strict probe: the last pattern to match
// path decides inclusion, so a later negated pattern can veto an earlier
// positive match.
func (m *Matcher) PatternMatchingRelativePath(path string, isDir *bool, attrs walk.AttributesFunc) bool {
	if len(m.patterns) == 0 {
		return true
	}
	matched := false
	any := false
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p.glob, path); ok {
			any = true
			matched = !p.negate
		}
	}
	return any && matched
}

// literalPrefix returns the leading path segments of glob before its first
// wildcard metacharacter.
func literalPrefix(glob string) string {
	idx := strings.IndexAny(glob, "*?[{\\")
	if idx == -1 {
		return glob
	}
	cut := strings.LastIndex(glob[:idx], "/")
	if cut == -1 {
		return ""
	}
	return glob[:cut]
}
