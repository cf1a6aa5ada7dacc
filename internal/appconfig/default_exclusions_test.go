package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexferrari88/dirwalk/internal/excludes"
)

func TestDefaultIgnoreLines_IgnoresNodeModules(t *testing.T) {
	s := excludes.NewStackWithDefaults(t.TempDir(), false, DefaultIgnoreLines())
	_, excluded, err := s.AtEntry("node_modules/left-pad/index.js", nil)
	require.NoError(t, err)
	assert.True(t, excluded)
}

func TestDefaultIgnoreLines_AdmitsOrdinarySourceFile(t *testing.T) {
	s := excludes.NewStackWithDefaults(t.TempDir(), false, DefaultIgnoreLines())
	_, excluded, err := s.AtEntry("src/main.go", nil)
	require.NoError(t, err)
	assert.False(t, excluded)
}
