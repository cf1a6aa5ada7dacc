package walk

// Kind further specifies what a directory entry is, similar to a file mode.
type Kind int

const (
	// KindFile is a blob, executable or not.
	KindFile Kind = iota
	// KindSymlink is a symlink.
	KindSymlink
	// KindDirectory is an ordinary directory.
	KindDirectory
	// KindEmptyDirectory is a directory that contains no file or directory
	// at any depth.
	KindEmptyDirectory
	// KindRepository is a directory which contains a `.git` that isn't ours.
	KindRepository
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindSymlink:
		return "Symlink"
	case KindDirectory:
		return "Directory"
	case KindEmptyDirectory:
		return "EmptyDirectory"
	case KindRepository:
		return "Repository"
	default:
		return "Unknown"
	}
}

// IsDir returns true if this is a directory on disk. Note that this is true
// for repositories as well.
func (k Kind) IsDir() bool {
	return k == KindDirectory || k == KindRepository
}

// isRecursableDir returns true only for an ordinary directory; repositories
// and empty-directory markers are never recursed into directly.
func (k Kind) isRecursableDir() bool {
	return k == KindDirectory
}

// kindFromFileType classifies a Kind from the cheap on-disk signals a
// directory reader or os.Lstat can provide.
func kindFromFileType(isDir, isSymlink bool) Kind {
	if isDir {
		return KindDirectory
	}
	if isSymlink {
		return KindSymlink
	}
	return KindFile
}
