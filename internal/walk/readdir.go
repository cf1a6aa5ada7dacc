package walk

import (
	"io/fs"
	"os"

	"golang.org/x/text/unicode/norm"
)

// dirChild is the minimal information the directory reader produces per
// entry before classification.
type dirChild struct {
	name      string
	kind      Kind
	kindKnown bool
}

// readDirChildren lists a directory's immediate children, resolving each
// one's file type eagerly so the classifier rarely needs the onDemand
// fallback. When precomposeUnicode is set, names are normalized to NFC,
// undoing the NFD decomposition some filesystems (notably HFS+/APFS) apply.
func readDirChildren(fsPath string, precomposeUnicode bool) ([]dirChild, error) {
	entries, err := os.ReadDir(fsPath)
	if err != nil {
		return nil, err
	}
	children := make([]dirChild, 0, len(entries))
	for _, de := range entries {
		name := de.Name()
		if precomposeUnicode && !norm.NFC.IsNormalString(name) {
			name = norm.NFC.String(name)
		}
		kind, known := kindFromDirEntry(de)
		children = append(children, dirChild{name: name, kind: kind, kindKnown: known})
	}
	return children, nil
}

func kindFromDirEntry(de fs.DirEntry) (Kind, bool) {
	t := de.Type()
	switch {
	case t&os.ModeSymlink != 0:
		return KindSymlink, true
	case t.IsDir():
		return KindDirectory, true
	case t.IsRegular():
		return KindFile, true
	default:
		return 0, false
	}
}

// recursiveWalk implements §4.4: it reads one directory, classifies each
// child, recurses into every child that both its status and the delegate
// permit, and holds back or immediately emits the rest. Once every child has
// been handled it resolves the directory itself via reduceHeldEntries.
//
// isWorktreeDir marks the worktree root, which is read like any other
// directory but never folds its held children into a single entry.
func recursiveWalk(
	isWorktreeDir bool,
	pb *pathBuf,
	dirStatus Status,
	dirKind Kind,
	ctx *Context,
	opts Options,
	delegate Delegate,
	out *Outcome,
	state *holdState,
) (Action, error) {
	out.ReadDirCalls++
	children, err := readDirChildren(pb.fsPath(), opts.PrecomposeUnicode)
	if err != nil {
		return ActionContinue, &ReadDirError{Path: pb.fsPath(), Err: err}
	}

	m := state.newMark(isWorktreeDir)
	numEntries := 0
	finalAction := ActionContinue

	for _, child := range children {
		numEntries++
		fsLenBefore, relaLenBefore := pb.push(child.name)
		filenameStart := pb.filenameStart(relaLenBefore)
		fsPath := pb.fsPath()

		res, cerr := classifyPath(fsPath, pb.relaPath(), filenameStart, kindPtr(child.kind, child.kindKnown), onDemandKind(fsPath), opts, ctx)
		if cerr != nil {
			pb.truncate(fsLenBefore, relaLenBefore)
			return ActionContinue, cerr
		}

		entryForDelegate := Entry{RelaPath: pb.relaPath(), Status: res.Status, Kind: res.Kind}
		if res.Status.CanRecurse(res.Kind, res.KindKnown) && delegate.CanRecurse(entryForDelegate) {
			action, rerr := recursiveWalk(false, pb, res.Status, res.Kind, ctx, opts, delegate, out, state)
			if rerr != nil {
				pb.truncate(fsLenBefore, relaLenBefore)
				return ActionContinue, rerr
			}
			if action != ActionContinue {
				finalAction = action
				pb.truncate(fsLenBefore, relaLenBefore)
				break
			}
		} else if !state.holdForCollapse(pb.relaPath(), res.Status, res.Kind, res.KindKnown, opts) {
			if action := emitEntry(pb.relaPath(), res.Status, nil, res.Kind, opts, out, delegate); action != ActionContinue {
				finalAction = action
				pb.truncate(fsLenBefore, relaLenBefore)
				break
			}
		}
		pb.truncate(fsLenBefore, relaLenBefore)
	}

	if finalAction != ActionContinue {
		state.discard(m)
		return finalAction, nil
	}

	action := m.reduceHeldEntries(numEntries, state, pb.relaPath(), dirStatus, dirKind, opts, out, delegate)
	return action, nil
}

// onDemandKind is the last-resort file-type probe for the rare case where
// neither the index nor the directory reader could determine one, e.g. a
// directory entry whose type bits the OS left unset.
func onDemandKind(fsPath string) func() (Kind, bool) {
	return func() (Kind, bool) {
		info, err := os.Lstat(fsPath)
		if err != nil {
			return 0, false
		}
		return kindFromFileType(info.Mode().IsDir(), info.Mode()&os.ModeSymlink != 0), true
	}
}
