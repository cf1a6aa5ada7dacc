package walk

// reduceHeldEntries implements §4.5's decision point, run once a directory's
// children have all been classified: an empty directory is reported as such,
// otherwise a fold into one entry is attempted before falling back to
// emitting every held child individually.
func (m mark) reduceHeldEntries(
	numEntries int,
	state *holdState,
	dirRela string,
	dirStatus Status,
	dirKind Kind,
	opts Options,
	out *Outcome,
	delegate Delegate,
) Action {
	if numEntries == 0 {
		if dirKind == KindRepository {
			panic("walk: an empty directory cannot be a repository, it has at least a .git entry")
		}
		return emitEntry(dirRela, dirStatus, nil, KindEmptyDirectory, opts, out, delegate)
	}
	if action, folded := m.tryCollapse(dirRela, dirKind, state, opts, out, delegate); folded {
		return action
	}
	return m.emitAllHeld(state, opts, out, delegate)
}

// emitAllHeld drains every entry held since m and emits each individually,
// the fallback once a fold has been ruled out.
func (m mark) emitAllHeld(state *holdState, opts Options, out *Outcome, delegate Delegate) Action {
	held := append([]Entry(nil), state.onHold[m.startIndex:]...)
	state.onHold = state.onHold[:m.startIndex]
	for _, e := range held {
		if action := emitEntry(e.RelaPath, e.Status, nil, e.Kind, opts, out, delegate); action != ActionContinue {
			return action
		}
	}
	return ActionContinue
}

// tryCollapse implements the fold decision ladder of §4.5: a directory whose
// held children are either all untracked-compatible, all expendable-ignored,
// or all precious-ignored, is reported as a single entry standing in for the
// whole subtree. Any held tracked entry rules out folding entirely, since a
// folded entry can't represent a mix of tracked and untracked content. The
// worktree root is never folded.
//
// The bool return reports whether a fold decision was made at all (true) as
// opposed to falling through to emitting every child individually (false).
func (m mark) tryCollapse(
	dirRela string,
	dirKind Kind,
	state *holdState,
	opts Options,
	out *Outcome,
	delegate Delegate,
) (Action, bool) {
	if m.isWorktreeDir {
		return ActionContinue, false
	}

	held := state.onHold[m.startIndex:]
	var expendable, precious, untracked, total int
	for _, e := range held {
		total++
		switch {
		case e.Status.Kind == StatusTracked:
			// Presence of a single tracked entry rules out any fold.
		case e.Status.Kind == StatusIgnored && e.Status.Ignore == IgnoreExpendable:
			expendable++
		case e.Status.Kind == StatusIgnored && e.Status.Ignore == IgnorePrecious:
			precious++
		case e.Status.Kind == StatusUntracked:
			untracked++
		default:
			panic("walk: pruned entries must never be held for collapse")
		}
	}

	var dirStatus Status
	switch {
	case opts.EmitUntracked == EmissionCollapseDirectory &&
		untracked != 0 &&
		untracked+expendable+precious == total &&
		(!opts.CollapseIsForDeletion || precious == 0):
		dirStatus = Untracked
	case opts.EmitIgnored != nil && *opts.EmitIgnored == EmissionCollapseDirectory && expendable != 0 && expendable == total:
		dirStatus = IgnoredStatus(IgnoreExpendable)
	case opts.EmitIgnored != nil && *opts.EmitIgnored == EmissionCollapseDirectory && precious != 0 && precious == total:
		dirStatus = IgnoredStatus(IgnorePrecious)
	default:
		return ActionContinue, false
	}

	toDrain := append([]Entry(nil), held...)
	state.onHold = state.onHold[:m.startIndex]

	var removedWithoutCounting uint32
	action := ActionContinue
	for _, e := range toDrain {
		if e.Status != dirStatus && action == ActionContinue {
			ds := dirStatus
			action = emitEntry(e.RelaPath, e.Status, &ds, e.Kind, opts, out, delegate)
		} else {
			removedWithoutCounting++
		}
	}
	out.SeenEntries += removedWithoutCounting
	state.onHold = append(state.onHold, Entry{RelaPath: dirRela, Status: dirStatus, Kind: dirKind})
	return action, true
}
