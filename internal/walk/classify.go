package walk

import (
	"os"
	"path/filepath"
	"strings"
)

// classifyResult is the outcome of classifying a single path: its status and,
// if known, its disk kind.
type classifyResult struct {
	Status Status
	Kind   Kind
	// KindKnown is false when the file type could not be determined from the
	// index, the disk kind or the on-demand probe (e.g. a ".git" entry whose
	// disk kind wasn't supplied, since that check returns before any probe).
	KindKnown bool
}

func kindPtr(k Kind, known bool) *Kind {
	if !known {
		return nil
	}
	return &k
}

// classifyPath decides the Status and Kind of rela (a worktree-relative
// path), following the exact precedence order of §4.1: .git check, pathspec
// admissibility, index resolution, ignore probe, then untracked refinement.
//
// fsPath is the absolute, disk-accessible counterpart of rela, used only for
// the nested-repository probe; it is read but never left modified.
func classifyPath(
	fsPath string,
	rela string,
	filenameStart int,
	diskKind *Kind,
	onDemand func() (Kind, bool),
	opts Options,
	ctx *Context,
) (classifyResult, error) {
	filename := rela[filenameStart:]
	if isEqFold(filename, ".git", opts.IgnoreCase) {
		return resultFrom(DotGit, diskKind), nil
	}

	if rela != "" {
		var isDir *bool
		if diskKind != nil {
			isDir = boolPtr(diskKind.IsDir())
		}
		if !ctx.Pathspec.CanMatchRelativePath(rela, isDir) {
			return resultFrom(Pruned, diskKind), nil
		}
	}

	indexKind, trackedStatus := resolveFileTypeWithIndex(rela, ctx.Index, opts.IgnoreCase)
	fileKind, fileKindKnown := indexKind, indexKind != nil
	if !fileKindKnown && diskKind != nil {
		fileKind, fileKindKnown = diskKind, true
	}
	if !fileKindKnown && onDemand != nil {
		if k, ok := onDemand(); ok {
			fileKind, fileKindKnown = &k, true
		}
	}

	if trackedStatus != nil {
		return classifyResult{Status: *trackedStatus, Kind: derefKind(fileKind), KindKnown: fileKindKnown}, nil
	}

	if ctx.Excludes != nil {
		var isDir *bool
		if fileKindKnown {
			isDir = boolPtr(fileKind.IsDir())
		}
		kind, excluded, err := ctx.Excludes.AtEntry(rela, isDir)
		if err != nil {
			return classifyResult{}, &ExcludesAccessError{Err: err}
		}
		if excluded {
			return classifyResult{Status: IgnoredStatus(kind), Kind: derefKind(fileKind), KindKnown: fileKindKnown}, nil
		}
	}

	status := Untracked
	if fileKindKnown && fileKind.IsDir() {
		if !opts.RecurseRepositories {
			if isNested, gitDirRealpath := probeNestedRepository(fsPath, ctx.CurrentDir); isNested {
				if gitDirRealpath != ctx.GitDirRealpath {
					k := KindRepository
					fileKind, fileKindKnown = &k, true
				}
			}
		}
	} else {
		var isDir *bool
		if diskKind != nil {
			isDir = boolPtr(diskKind.IsDir())
		}
		matches := ctx.Pathspec.PatternMatchingRelativePath(rela, isDir, nil)
		if !matches {
			status = Pruned
		}
	}
	return classifyResult{Status: status, Kind: derefKind(fileKind), KindKnown: fileKindKnown}, nil
}

func resultFrom(status Status, k *Kind) classifyResult {
	return classifyResult{Status: status, Kind: derefKind(k), KindKnown: k != nil}
}

func derefKind(k *Kind) Kind {
	if k == nil {
		return 0
	}
	return *k
}

// resolveFileTypeWithIndex implements §4.3, the index resolver.
func resolveFileTypeWithIndex(rela string, index Index, ignoreCase bool) (*Kind, *Status) {
	if entry, ok := index.EntryByPath(rela, ignoreCase); ok {
		tracked := Tracked
		if !entry.UpToDate {
			return nil, &tracked
		}
		switch entry.Mode {
		case IndexEntryModeSubmodule:
			k := KindRepository
			return &k, &tracked
		case IndexEntryModeFile:
			k := KindFile
			return &k, &tracked
		case IndexEntryModeSymlink:
			k := KindSymlink
			return &k, &tracked
		default:
			return nil, &tracked
		}
	}

	entries := index.EntriesWithPrefix(rela, ignoreCase)
	if len(entries) == 0 {
		return nil, nil
	}

	tracked := Tracked
	allUpToDate := true
	for _, e := range entries {
		if !e.UpToDate {
			allUpToDate = false
			break
		}
	}
	if allUpToDate {
		k := KindDirectory
		return &k, &tracked
	}

	if len(entries) == 1 && entries[0].Sparse {
		excluded := TrackedExcluded
		return nil, &excluded
	}

	allSkipWorktree := true
	for _, e := range entries {
		if !e.SkipWorktree {
			allSkipWorktree = false
			break
		}
	}
	if allSkipWorktree {
		excluded := TrackedExcluded
		return nil, &excluded
	}

	return nil, &tracked
}

// probeNestedRepository reports whether fsPath (a directory) contains a
// `.git` that marks it as a non-bare worktree, and if so, the real path of
// that `.git`.
func probeNestedRepository(fsPath, currentDir string) (bool, string) {
	gitPath := filepath.Join(fsPath, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false, ""
	}
	// A `.git` file (not a directory) points at a gitdir elsewhere, e.g. in a
	// worktree checkout or submodule; either way this is still a nested
	// worktree marker.
	if !info.IsDir() {
		target, ok := readGitLink(gitPath)
		if !ok {
			return false, ""
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(fsPath, target)
		}
		gitPath = target
	}
	real, err := filepath.EvalSymlinks(gitPath)
	if err != nil {
		real = gitPath
	}
	return true, real
}

// readGitLink parses the "gitdir: <path>" contents of a `.git` file used by
// worktrees and submodules.
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

func isEqFold(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
