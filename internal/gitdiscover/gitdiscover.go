// Package gitdiscover locates the worktree root and git directory enclosing
// a path, the discovery step a walk needs before it can tell its own
// repository apart from nested ones. Adapted from the teacher's exec-backed
// git helper, repurposed from cloning remote repositories to walking the
// local filesystem upward.
package gitdiscover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotARepository is returned when no ".git" is found between start and
// the filesystem root.
var ErrNotARepository = errors.New("gitdiscover: not inside a git repository")

// Discover walks upward from start looking for a ".git" entry, returning the
// worktree root (the directory containing it) and the real, symlink-resolved
// path of the git directory itself.
func Discover(start string) (worktreeRoot, gitDirRealpath string, err error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", "", fmt.Errorf("gitdiscover: resolving %q: %w", start, err)
	}
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		dir = real
	}

	for {
		candidate := filepath.Join(dir, ".git")
		info, statErr := os.Lstat(candidate)
		if statErr == nil {
			real, err := resolveGitDir(candidate, dir, info)
			if err != nil {
				return "", "", err
			}
			return dir, real, nil
		}
		if !os.IsNotExist(statErr) {
			return "", "", fmt.Errorf("gitdiscover: stat %q: %w", candidate, statErr)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", ErrNotARepository
		}
		dir = parent
	}
}

// resolveGitDir turns a ".git" entry (directory, symlink, or gitlink file
// pointing elsewhere) into the real path of the actual git directory.
func resolveGitDir(gitPath, worktreeDir string, info os.FileInfo) (string, error) {
	if !info.Mode().IsDir() && info.Mode()&os.ModeSymlink == 0 {
		target, ok := readGitLink(gitPath)
		if !ok {
			return "", fmt.Errorf("gitdiscover: %q is not a directory, symlink, or gitdir link", gitPath)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(worktreeDir, target)
		}
		gitPath = target
	}
	real, err := filepath.EvalSymlinks(gitPath)
	if err != nil {
		return "", fmt.Errorf("gitdiscover: resolving real path of %q: %w", gitPath, err)
	}
	return real, nil
}

// readGitLink parses the "gitdir: <path>" contents of a `.git` file, used by
// linked worktrees and submodules to point at their real git directory.
func readGitLink(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	content := strings.TrimSpace(string(data))
	const prefix = "gitdir:"
	if !strings.HasPrefix(content, prefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(content, prefix)), true
}
