package walk

import (
	"path/filepath"
	"strings"
)

// pathBuf threads one filesystem path and one worktree-relative byte-string
// path through the recursion, rather than allocating a new string on every
// frame. A component is pushed on entry to a frame and the buffer is
// truncated back to its pre-push length on every exit path, including
// errors, keeping emitted paths '/'-normalized and allocation O(depth).
type pathBuf struct {
	fs   []byte // absolute filesystem path, OS separators
	rela []byte // worktree-relative path, always '/'-separated
}

func newPathBuf(root string) *pathBuf {
	return &pathBuf{fs: []byte(filepath.Clean(root))}
}

// push appends name as a new path component to both buffers and returns the
// lengths to truncate back to on exit.
func (p *pathBuf) push(name string) (fsLen, relaLen int) {
	fsLen, relaLen = len(p.fs), len(p.rela)
	p.fs = append(p.fs, filepath.Separator)
	p.fs = append(p.fs, name...)
	if relaLen != 0 {
		p.rela = append(p.rela, '/')
	}
	p.rela = append(p.rela, name...)
	return fsLen, relaLen
}

func (p *pathBuf) truncate(fsLen, relaLen int) {
	p.fs = p.fs[:fsLen]
	p.rela = p.rela[:relaLen]
}

func (p *pathBuf) fsPath() string {
	return string(p.fs)
}

func (p *pathBuf) relaPath() string {
	return string(p.rela)
}

// filenameStart returns the index within rela at which the last pushed
// component begins (used to slice out just the filename for the ".git"
// check), mirroring filename_start_idx in the reference classifier.
func (p *pathBuf) filenameStart(relaLenBeforePush int) int {
	if relaLenBeforePush == 0 {
		return 0
	}
	return relaLenBeforePush + 1
}

func toSlash(p string) string {
	if filepath.Separator == '/' {
		return p
	}
	return strings.ReplaceAll(p, string(filepath.Separator), "/")
}
