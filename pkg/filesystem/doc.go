// Package filesystem provides filesystem implementations for dotboot.
//
// NewOS returns the types.FS backed by the os package. Symlink semantics
// matter to the link installer, so tests run against the real filesystem
// under t.TempDir() rather than an in-memory fake.
package filesystem
