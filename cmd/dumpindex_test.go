package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpIndexCmd_PrintsEntries(t *testing.T) {
	resetRootCmd()
	dir := t.TempDir()
	path := filepath.Join(dir, "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - path: a.txt\n    mode: file\n    up_to_date: true\n"), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"dump-index", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "1 entries")
	assert.Contains(t, buf.String(), "a.txt")
}

func TestDumpIndexCmd_ErrorsOnMissingFile(t *testing.T) {
	resetRootCmd()
	rootCmd.SetArgs([]string{"dump-index", "/nonexistent/index.yaml"})
	assert.Error(t, rootCmd.Execute())
}
