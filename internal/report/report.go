// Package report formats the entries a walk.Walk run produces, for the CLI's
// plain listing and tree output modes.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

// Recorder is a walk.Delegate that writes one line per entry to w and keeps
// every entry around for a later tree render or diff.
type Recorder struct {
	walk.BaseDelegate
	w       io.Writer
	Entries []walk.Entry
}

// NewRecorder builds a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Emit implements walk.Delegate.
func (r *Recorder) Emit(entry walk.Entry, dirStatus *walk.Status) walk.Action {
	r.Entries = append(r.Entries, entry)
	path := entry.RelaPath
	if path == "" {
		path = "."
	}
	if dirStatus != nil {
		fmt.Fprintf(r.w, "%-16s %-16s %s (folds to %s)\n", entry.Status, entry.Kind, path, dirStatus)
	} else {
		fmt.Fprintf(r.w, "%-16s %-16s %s\n", entry.Status, entry.Kind, path)
	}
	return walk.ActionContinue
}

// LineBuffer accumulates the same "status kind path" lines Recorder prints,
// without an io.Writer, for callers (like the diff command) that need the
// full text rather than a stream.
type LineBuffer struct {
	b strings.Builder
}

// AddEntry appends one formatted line for entry.
func (lb *LineBuffer) AddEntry(entry walk.Entry) {
	path := entry.RelaPath
	if path == "" {
		path = "."
	}
	fmt.Fprintf(&lb.b, "%-16s %-16s %s\n", entry.Status, entry.Kind, path)
}

// String returns every line accumulated so far.
func (lb *LineBuffer) String() string {
	return lb.b.String()
}
