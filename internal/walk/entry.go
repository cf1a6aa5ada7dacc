package walk

// Entry is a worktree-relative path together with its classification.
//
// RelaPath is forward-slash separated and never contains "..". It is empty
// only when it addresses the worktree root itself.
type Entry struct {
	RelaPath string
	Status   Status
	Kind     Kind
}

// Action is returned by Delegate.Emit to control traversal.
type Action int

const (
	// ActionContinue proceeds with the traversal as normal.
	ActionContinue Action = iota
	// ActionCancel stops the traversal, unwinding frame by frame.
	ActionCancel
)

// EmissionMode controls whether entries of a given status are emitted
// immediately (Matching) or held back until a containing directory can be
// collapsed into one entry (CollapseDirectory).
type EmissionMode int

const (
	// EmissionMatching emits each entry as it is classified, without
	// buffering or simplification.
	EmissionMatching EmissionMode = iota
	// EmissionCollapseDirectory emits only a containing directory if all of
	// its held entries share a compatible status.
	EmissionCollapseDirectory
)

// Delegate lets the caller observe entries and control recursion. It may
// cancel the walk at any point by returning ActionCancel from Emit.
type Delegate interface {
	// Emit is called for every observed entry, or for the directory itself
	// when entries have been collapsed, or when the root of the traversal
	// can't be recursed into. dirStatus is non-nil when entry would have
	// contributed to a folded directory of a different status, so the
	// caller can tell the two apart.
	Emit(entry Entry, dirStatus *Status) Action

	// CanRecurse reports whether the given directory entry may be recursed
	// into. Only called for physical directories.
	CanRecurse(entry Entry) bool
}

// BaseDelegate implements the default CanRecurse policy (Status.CanRecurse)
// so callers can embed it and only override Emit.
type BaseDelegate struct{}

// CanRecurse implements the default `git status`-like recursion policy.
func (BaseDelegate) CanRecurse(entry Entry) bool {
	return entry.Status.CanRecurse(entry.Kind, true)
}
