package walk

import (
	"os"
	"path/filepath"
	"strings"
)

// validateAndClassifyRoot implements §4.2: it walks the traversal root
// component by component from the worktree root, rejecting symlinks along
// the way, and returns the classification of the first component that does
// not permit recursion (or of the leaf, if every component permits it).
//
// On success it also returns the pathBuf positioned at that depth, ready to
// be handed to the recursive walker.
func validateAndClassifyRoot(worktreeRoot, traversalRoot string, opts Options, ctx *Context) (classifyResult, *pathBuf, error) {
	wtClean := filepath.Clean(worktreeRoot)
	info, err := os.Stat(wtClean)
	if err != nil || !info.IsDir() {
		return classifyResult{}, nil, &WorktreeRootIsFileError{Root: worktreeRoot}
	}

	trClean := filepath.Clean(traversalRoot)
	rel, err := filepath.Rel(wtClean, trClean)
	if err != nil {
		return classifyResult{}, nil, &NormalizeRootError{Root: traversalRoot}
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return classifyResult{}, nil, &RootNotInWorktreeError{Root: traversalRoot, WorktreeRoot: worktreeRoot}
	}

	var components []string
	if rel != "." {
		components = strings.Split(rel, "/")
		for _, c := range components {
			if c == ".." || c == "." {
				return classifyResult{}, nil, &NormalizeRootError{Root: traversalRoot}
			}
		}
	}

	pb := newPathBuf(wtClean)
	var result classifyResult

	if len(components) == 0 {
		diskKind := KindDirectory
		res, err := classifyPath(pb.fsPath(), pb.relaPath(), pb.filenameStart(0), &diskKind, nil, opts, ctx)
		if err != nil {
			return classifyResult{}, nil, err
		}
		return res, pb, nil
	}

	for i, comp := range components {
		_, relaLenBefore := pb.push(comp)
		isLast := i == len(components)-1

		lst, err := os.Lstat(pb.fsPath())
		if err != nil {
			return classifyResult{}, nil, &SymlinkMetadataError{Path: pb.fsPath(), Err: err}
		}
		isSymlink := lst.Mode()&os.ModeSymlink != 0
		if !isLast && isSymlink {
			return classifyResult{}, nil, &SymlinkInRootError{
				Root: traversalRoot, WorktreeRoot: worktreeRoot, ComponentIndex: i,
			}
		}

		diskKind := kindFromFileType(lst.IsDir(), isSymlink)
		filenameStart := pb.filenameStart(relaLenBefore)
		res, err := classifyPath(pb.fsPath(), pb.relaPath(), filenameStart, &diskKind, nil, opts, ctx)
		if err != nil {
			return classifyResult{}, nil, err
		}
		result = res
		if !res.Status.CanRecurse(res.Kind, res.KindKnown) {
			break
		}
	}
	return result, pb, nil
}
