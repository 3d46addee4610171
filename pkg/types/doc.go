// Package types defines the small set of types shared across dotboot:
// the filesystem abstraction the link installer works through and the
// on-disk entry kinds it distinguishes.
package types
