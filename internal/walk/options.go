package walk

// Options controls how a walk classifies and emits entries. The zero value
// is the strictest default: no ignored or tracked entries emitted, no
// collapsing, no empty-directory markers.
type Options struct {
	// PrecomposeUnicode, when true, asks the directory reader to yield NFC
	// names rather than whatever decomposed form the filesystem returned.
	PrecomposeUnicode bool
	// IgnoreCase makes ".git" tests and index lookups case-insensitive.
	IgnoreCase bool
	// RecurseRepositories, when true, descends into nested repositories
	// instead of treating them as opaque KindRepository entries.
	RecurseRepositories bool
	// EmitPruned controls whether pruned entries reach the delegate at all.
	EmitPruned bool
	// EmitIgnored controls whether and how ignored entries are emitted.
	// A nil value means ignored entries become untracked by omission.
	EmitIgnored *EmissionMode
	// CollapseIsForDeletion blocks folding a directory to Untracked if it
	// contains any precious-ignored file, so deletion can't silently eat
	// precious content.
	CollapseIsForDeletion bool
	// EmitTracked controls whether tracked entries reach the delegate.
	EmitTracked bool
	// EmitUntracked controls how untracked entries are emitted.
	EmitUntracked EmissionMode
	// EmitEmptyDirectories, when true, emits leaf directories containing no
	// file at any depth.
	EmitEmptyDirectories bool
}

func emissionMode(v EmissionMode) *EmissionMode { return &v }

// shouldHold reports whether an entry of the given status is a candidate for
// directory-collapse holding, per Options.
func (o Options) shouldHold(status Status) bool {
	if status.IsPruned() {
		return false
	}
	ignoredCollapses := o.EmitIgnored != nil && *o.EmitIgnored == EmissionCollapseDirectory
	return ignoredCollapses || o.EmitUntracked == EmissionCollapseDirectory
}
