package walk

// emitEntry is the single gate through which every classified entry passes
// on its way to the delegate, whether classified directly by the directory
// reader or synthesized by a directory collapse. It always counts the entry
// as seen; whether it actually reaches the delegate depends on Options.
func emitEntry(rela string, status Status, dirStatus *Status, kind Kind, opts Options, out *Outcome, delegate Delegate) Action {
	out.SeenEntries++
	if kind == KindEmptyDirectory && !opts.EmitEmptyDirectories {
		return ActionContinue
	}
	if !shouldEmit(status, opts) {
		return ActionContinue
	}
	action := delegate.Emit(Entry{RelaPath: rela, Status: status, Kind: kind}, dirStatus)
	if action == ActionContinue {
		out.ReturnedEntries++
	}
	return action
}

// shouldEmit reports whether an entry of the given status is ever passed to
// the delegate, independent of directory-collapse bookkeeping.
func shouldEmit(status Status, opts Options) bool {
	switch status.Kind {
	case StatusDotGit, StatusTrackedExcluded, StatusUntracked:
		return true
	case StatusPruned:
		return opts.EmitPruned
	case StatusTracked:
		return opts.EmitTracked
	case StatusIgnored:
		return opts.EmitIgnored != nil
	default:
		return true
	}
}
