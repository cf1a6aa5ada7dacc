package walk

// Outcome reports aggregate statistics collected while walking.
type Outcome struct {
	// ReadDirCalls is the number of directory-read operations performed.
	ReadDirCalls uint32
	// ReturnedEntries is the number of Delegate.Emit calls that returned
	// ActionContinue.
	ReturnedEntries uint64
	// SeenEntries is the number of entries observed prior to pathspec
	// filtering or collapsing them away. SeenEntries >= ReturnedEntries.
	SeenEntries uint32
}
