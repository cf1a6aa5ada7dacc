package excludes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStack_ExpendableMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\nbuild/\n")

	s := NewStack(root, false)
	kind, excluded, err := s.AtEntry("debug.log", nil)
	require.NoError(t, err)
	assert.True(t, excluded)
	assert.Equal(t, walk.IgnoreExpendable, kind)

	_, excluded, err = s.AtEntry("keep.txt", nil)
	require.NoError(t, err)
	assert.False(t, excluded)
}

func TestStack_PreciousMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.cache\n!!secrets/*.key\n")

	s := NewStack(root, false)
	kind, excluded, err := s.AtEntry("secrets/prod.key", nil)
	require.NoError(t, err)
	assert.True(t, excluded)
	assert.Equal(t, walk.IgnorePrecious, kind)

	kind, excluded, err = s.AtEntry("build.cache", nil)
	require.NoError(t, err)
	assert.True(t, excluded)
	assert.Equal(t, walk.IgnoreExpendable, kind)
}

func TestStack_DefaultIgnoreLinesApplyLikeAVirtualRoot(t *testing.T) {
	root := t.TempDir()

	s := NewStackWithDefaults(root, false, []string{"**/node_modules/**"})
	_, excluded, err := s.AtEntry("node_modules/left-pad/index.js", nil)
	require.NoError(t, err)
	assert.True(t, excluded)
}

func TestStack_RootGitignoreOverridesDefaultIgnoreLines(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "!node_modules/keep-me/**\n")

	s := NewStackWithDefaults(root, false, []string{"**/node_modules/**"})
	_, excluded, err := s.AtEntry("node_modules/keep-me/index.js", nil)
	require.NoError(t, err)
	assert.False(t, excluded)
}

func TestStack_NestedGitignoreAddsToRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\n")
	writeFile(t, filepath.Join(root, "sub", ".gitignore"), "*.dat\n")

	s := NewStack(root, false)

	_, excluded, err := s.AtEntry("sub/run.log", nil)
	require.NoError(t, err)
	assert.True(t, excluded, "root pattern still applies under sub/")

	_, excluded, err = s.AtEntry("sub/run.dat", nil)
	require.NoError(t, err)
	assert.True(t, excluded, "nested pattern applies within sub/")

	_, excluded, err = s.AtEntry("run.dat", nil)
	require.NoError(t, err)
	assert.False(t, excluded, "nested pattern doesn't apply outside sub/")
}
