package walk

import "fmt"

// WorktreeRootIsFileError is returned when the worktree root itself isn't a
// directory.
type WorktreeRootIsFileError struct {
	Root string
}

func (e *WorktreeRootIsFileError) Error() string {
	return fmt.Sprintf("walk: worktree root at %q is not a directory", e.Root)
}

// NormalizeRootError is returned when the traversal root's components (like
// "..") cannot be eliminated.
type NormalizeRootError struct {
	Root string
}

func (e *NormalizeRootError) Error() string {
	return fmt.Sprintf("walk: traversal root %q contains relative path components and could not be normalized", e.Root)
}

// RootNotInWorktreeError is returned when the traversal root is not lexically
// contained in the worktree root.
type RootNotInWorktreeError struct {
	Root, WorktreeRoot string
}

func (e *RootNotInWorktreeError) Error() string {
	return fmt.Sprintf("walk: traversal root %q must be literally contained in worktree root %q", e.Root, e.WorktreeRoot)
}

// SymlinkInRootError is returned when an intermediate component of the
// traversal root is a symlink.
type SymlinkInRootError struct {
	Root, WorktreeRoot string
	ComponentIndex     int
}

func (e *SymlinkInRootError) Error() string {
	return fmt.Sprintf("walk: a symlink was found at component %d of traversal root %q as seen from worktree root %q",
		e.ComponentIndex, e.Root, e.WorktreeRoot)
}

// ExcludesAccessError wraps an I/O error surfaced by the excludes stack.
type ExcludesAccessError struct {
	Err error
}

func (e *ExcludesAccessError) Error() string {
	return fmt.Sprintf("walk: failed to update the excludes stack to see if a path is excluded: %v", e.Err)
}

func (e *ExcludesAccessError) Unwrap() error { return e.Err }

// ReadDirError wraps an I/O error from reading a directory's contents.
type ReadDirError struct {
	Path string
	Err  error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("walk: failed to read the directory at %q: %v", e.Path, e.Err)
}

func (e *ReadDirError) Unwrap() error { return e.Err }

// DirEntryError wraps an I/O error obtaining one directory entry.
type DirEntryError struct {
	ParentDirectory string
	Err             error
}

func (e *DirEntryError) Error() string {
	return fmt.Sprintf("walk: could not obtain directory entry in root of %q: %v", e.ParentDirectory, e.Err)
}

func (e *DirEntryError) Unwrap() error { return e.Err }

// DirEntryFileTypeError wraps an I/O error obtaining the file type of a
// directory entry.
type DirEntryFileTypeError struct {
	Path string
	Err  error
}

func (e *DirEntryFileTypeError) Error() string {
	return fmt.Sprintf("walk: could not obtain filetype of directory entry %q: %v", e.Path, e.Err)
}

func (e *DirEntryFileTypeError) Unwrap() error { return e.Err }

// SymlinkMetadataError wraps an I/O error obtaining symlink metadata.
type SymlinkMetadataError struct {
	Path string
	Err  error
}

func (e *SymlinkMetadataError) Error() string {
	return fmt.Sprintf("walk: could not obtain symlink metadata on %q: %v", e.Path, e.Err)
}

func (e *SymlinkMetadataError) Unwrap() error { return e.Err }
