package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexferrari88/dirwalk/internal/config"
)

func setupMockRunTree(t *testing.T, err error) {
	original := runTreeFunc
	runTreeFunc = func(cfg config.Config, out io.Writer) error {
		if err != nil {
			return err
		}
		_, writeErr := out.Write([]byte("root\n└── a.go\n"))
		return writeErr
	}
	t.Cleanup(func() { runTreeFunc = original })
}

func TestTreeCmd_RendersOutput(t *testing.T) {
	setupMockRunTree(t, nil)

	var buf bytes.Buffer
	resetRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"tree", t.TempDir()})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "a.go")
}

func TestTreeCmd_RejectsTooManyArgs(t *testing.T) {
	setupMockRunTree(t, nil)

	resetRootCmd()
	rootCmd.SetArgs([]string{"tree", "one", "two"})
	assert.Error(t, rootCmd.Execute())
}
