package filesystem

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/dotboot/pkg/types"
)

// Classify reports what currently occupies path without following a final
// symlink. A dangling symlink is reported as types.EntrySymlink, which a
// plain Stat would miss.
func Classify(fsys types.FS, path string) (types.EntryKind, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return types.EntryAbsent, nil
		}
		return "", err
	}
	return types.EntryKindFromMode(info.Mode()), nil
}

// Exists reports whether path resolves to something on disk, following links
func Exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

// isNotExist also treats a non-directory path component as absence, so a
// path below a regular file is missing rather than unreadable.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
