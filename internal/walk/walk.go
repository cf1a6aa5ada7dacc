// Package walk classifies the files and directories of a worktree relative
// to the index, a pathspec, and an excludes stack, collapsing directories of
// uniform status into single entries where the caller asks for it.
package walk

// Walk classifies traversalRoot within worktreeRoot, reporting every entry to
// delegate as it's discovered. Both roots are expected in the same form
// (normally absolute); a relative traversalRoot is not resolved against the
// process's current directory and, with an absolute worktreeRoot, fails with
// a NormalizeRootError. It returns once the traversal completes, the
// delegate cancels it, or an unrecoverable I/O error occurs.
func Walk(worktreeRoot, traversalRoot string, opts Options, ctx Context, delegate Delegate) (Outcome, error) {
	var out Outcome

	result, pb, err := validateAndClassifyRoot(worktreeRoot, traversalRoot, opts, &ctx)
	if err != nil {
		return out, err
	}

	entry := Entry{RelaPath: pb.relaPath(), Status: result.Status, Kind: result.Kind}
	if result.Status.CanRecurse(result.Kind, result.KindKnown) && delegate.CanRecurse(entry) {
		isWorktreeDir := pb.relaPath() == ""
		state := &holdState{}
		if _, err := recursiveWalk(isWorktreeDir, pb, result.Status, result.Kind, &ctx, opts, delegate, &out, state); err != nil {
			return out, err
		}
		// traversalRoot itself may have folded into a single held entry
		// (root.go never holds it, recursiveWalk's own reduceHeldEntries
		// does) with no parent frame left to drain it; drain here.
		mark{startIndex: 0}.emitAllHeld(state, opts, &out, delegate)
		return out, nil
	}

	emitEntry(pb.relaPath(), result.Status, nil, result.Kind, opts, &out, delegate)
	return out, nil
}
