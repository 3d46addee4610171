package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dotboot operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat must not follow symlinks; dangling links are detected through it.
	Lstat(name string) (fs.FileInfo, error)
}
