package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dirwalkBinaryPath string

func TestMain(m *testing.M) {
	binaryName := "test_dirwalk_binary"
	build := exec.Command("go", "build", "-o", binaryName, "../../main.go")
	out, err := build.CombinedOutput()
	if err != nil {
		os.Stderr.WriteString("failed to build dirwalk binary for integration tests:\n" + string(out) + "\n" + err.Error() + "\n")
		os.Exit(1)
	}

	absPath, err := filepath.Abs(binaryName)
	if err != nil {
		os.Stderr.WriteString("failed to resolve test binary path: " + err.Error() + "\n")
		os.Remove(binaryName)
		os.Exit(1)
	}
	dirwalkBinaryPath = absPath

	code := m.Run()
	os.Remove(dirwalkBinaryPath)
	os.Exit(code)
}

func runDirwalk(t *testing.T, workDir string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(dirwalkBinaryPath, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirwalk_UntrackedProjectListsEveryFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "src", "helper.go"), "package src\n")

	stdout, stderr, err := runDirwalk(t, root, ".")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "main.go")
	assert.Contains(t, stdout, "src/helper.go")
}

func TestDirwalk_RespectsGitignore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\n")
	writeFile(t, filepath.Join(root, "keep.txt"), "kept\n")
	writeFile(t, filepath.Join(root, "debug.log"), "noisy\n")

	stdout, stderr, err := runDirwalk(t, root, ".")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "keep.txt")
	assert.NotContains(t, stdout, "debug.log")
}

func TestDirwalk_DefaultIgnoresSkipNodeModules(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, "node_modules", "left-pad", "index.js"), "module.exports = {}\n")
	writeFile(t, filepath.Join(root, "app.js"), "console.log('hi')\n")

	stdout, stderr, err := runDirwalk(t, root, ".")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "app.js")
	assert.NotContains(t, stdout, "left-pad")
}

func TestDirwalk_NoDefaultIgnoresFlagDisablesThem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, "node_modules", "left-pad", "index.js"), "module.exports = {}\n")

	stdout, stderr, err := runDirwalk(t, root, ".", "--no-default-ignores", "--emit-ignored", "matching")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "left-pad")
}

func TestDirwalk_TreeSubcommandRendersBoxDrawing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, "a.go"), "package a\n")

	stdout, stderr, err := runDirwalk(t, root, "tree", ".")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "└── a.go")
}

func TestDirwalk_NotARepositoryErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "x\n")

	_, stderr, err := runDirwalk(t, root, ".")
	assert.Error(t, err)
	assert.NotEmpty(t, stderr)
}
