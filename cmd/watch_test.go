package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexferrari88/dirwalk/internal/config"
)

func setupMockRunWatch(t *testing.T, err error) *config.Config {
	original := runWatchFunc
	var captured config.Config
	runWatchFunc = func(cfg config.Config, out io.Writer, stop <-chan struct{}) error {
		captured = cfg
		if err != nil {
			return err
		}
		_, writeErr := out.Write([]byte("watching\n"))
		return writeErr
	}
	t.Cleanup(func() { runWatchFunc = original })
	return &captured
}

func TestWatchCmd_InvokesRunWatch(t *testing.T) {
	captured := setupMockRunWatch(t, nil)

	var buf bytes.Buffer
	dir := t.TempDir()
	resetRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"watch", dir})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, dir, captured.TraversalRoot)
	assert.Contains(t, buf.String(), "watching")
}

func TestWatchCmd_RejectsUnknownEmissionMode(t *testing.T) {
	setupMockRunWatch(t, nil)

	resetRootCmd()
	rootCmd.SetArgs([]string{"watch", t.TempDir(), "--emit-ignored", "sometimes"})
	assert.Error(t, rootCmd.Execute())
}
