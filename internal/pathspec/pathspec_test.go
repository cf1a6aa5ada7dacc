package pathspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_EmptyAdmitsEverything(t *testing.T) {
	m := New(nil)
	assert.True(t, m.CanMatchRelativePath("anything/here.go", nil))
	assert.True(t, m.PatternMatchingRelativePath("anything/here.go", nil, nil))
}

func TestMatcher_SingleGlob(t *testing.T) {
	m := New([]string{"*.go"})
	assert.True(t, m.PatternMatchingRelativePath("main.go", nil, nil))
	assert.False(t, m.PatternMatchingRelativePath("main.txt", nil, nil))
}

func TestMatcher_DoubleStarDescendant(t *testing.T) {
	m := New([]string{"internal/**/*.go"})
	assert.True(t, m.PatternMatchingRelativePath("internal/walk/classify.go", nil, nil))
	assert.False(t, m.PatternMatchingRelativePath("cmd/root.go", nil, nil))
}

func TestMatcher_NegationOverridesEarlierMatch(t *testing.T) {
	m := New([]string{"*.go", "!main.go"})
	assert.False(t, m.PatternMatchingRelativePath("main.go", nil, nil))
	assert.True(t, m.PatternMatchingRelativePath("other.go", nil, nil))
}

func TestMatcher_CanMatchAdmitsAncestorOfPrefix(t *testing.T) {
	m := New([]string{"internal/walk/*.go"})
	assert.True(t, m.CanMatchRelativePath("internal", nil))
	assert.True(t, m.CanMatchRelativePath("internal/walk", nil))
	assert.False(t, m.CanMatchRelativePath("cmd", nil))
}
