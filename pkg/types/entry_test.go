package types

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryKindFromMode(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want EntryKind
	}{
		{"regular file", 0644, EntryFile},
		{"directory", fs.ModeDir | 0755, EntryDirectory},
		{"symlink", fs.ModeSymlink | 0777, EntrySymlink},
		{"symlink wins over dir bit", fs.ModeSymlink | fs.ModeDir, EntrySymlink},
		{"named pipe treated as file", fs.ModeNamedPipe, EntryFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntryKindFromMode(tt.mode))
		})
	}
}

func TestEntryKindPresent(t *testing.T) {
	assert.False(t, EntryAbsent.Present())
	assert.False(t, EntryKind("").Present())
	assert.True(t, EntryFile.Present())
	assert.True(t, EntryDirectory.Present())
	assert.True(t, EntrySymlink.Present())
}
