package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TempHome creates an isolated home directory and points HOME at it
func TempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config-test"))
	return home
}

// WriteFile creates path (and its parents) with content
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// MakeDir creates path and its parents
func MakeDir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
}

// Symlink creates a symlink at path pointing to target, creating parents
func Symlink(t *testing.T, target, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.Symlink(target, path))
}

// AssertSymlink checks that path is a symlink whose target is exactly want
func AssertSymlink(t *testing.T, path, want string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected %s to exist", path)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "expected %s to be a symlink", path)

	got, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, want, got, "symlink target of %s", path)
}

// AssertAbsent checks that nothing, not even a dangling link, exists at path
func AssertAbsent(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to be absent", path)
}

// Snapshot describes every entry below root: regular files map to their
// content, directories to "dir", symlinks to "-> target". Symlinks are not
// followed.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snap[rel] = "-> " + target
		case d.IsDir():
			snap[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap[rel] = string(data)
		}
		return nil
	})
	require.NoError(t, err)
	return snap
}

// SortedKeys returns the keys of a snapshot in lexical order
func SortedKeys(snap map[string]string) []string {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
