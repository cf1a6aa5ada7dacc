package walk

// holdState is the hold buffer (§3): an ordered sequence of entries held
// back pending a collapse decision, partitioned by marks that correspond to
// recursion depth. It is owned exclusively by one traversal.
type holdState struct {
	onHold []Entry
}

// mark records where in the buffer the current directory's children begin,
// and whether that directory is the worktree root, which never folds.
type mark struct {
	startIndex    int
	isWorktreeDir bool
}

func (s *holdState) newMark(isWorktreeDir bool) mark {
	return mark{startIndex: len(s.onHold), isWorktreeDir: isWorktreeDir}
}

// discard drops every entry held since mark m, used when a cancelled branch
// must not leave partial state behind: the delegate has already seen
// everything it will see.
func (s *holdState) discard(m mark) {
	s.onHold = s.onHold[:m.startIndex]
}

// holdForCollapse appends entry to the hold buffer if it's a candidate for
// collapsing the containing directory (§4.4 "Holding"), returning whether it
// was held.
func (s *holdState) holdForCollapse(rela string, status Status, kind Kind, kindKnown bool, opts Options) bool {
	if !kindKnown {
		// This can be a `.git` entry, whose file type we never resolve.
		return false
	}
	if !opts.shouldHold(status) {
		return false
	}
	s.onHold = append(s.onHold, Entry{RelaPath: rela, Status: status, Kind: kind})
	return true
}
