package types

import "io/fs"

// EntryKind is the on-disk state of a link destination
type EntryKind string

const (
	EntryAbsent    EntryKind = "absent"
	EntryFile      EntryKind = "file"
	EntryDirectory EntryKind = "directory"
	EntrySymlink   EntryKind = "symlink"
)

// EntryKindFromMode classifies a mode as returned by Lstat. Symlink-ness is
// checked first so a link to a directory is reported as a symlink.
func EntryKindFromMode(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsDir():
		return EntryDirectory
	default:
		// Sockets, fifos and devices are unlinked like regular files
		return EntryFile
	}
}

// Present reports whether the destination occupies the path in any form
func (k EntryKind) Present() bool {
	return k != EntryAbsent && k != ""
}
