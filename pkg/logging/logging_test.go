package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "dotboot", "dotboot.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "dotboot", "dotboot.log"), getLogFilePath())
}

func TestSetupLogFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := setupLogFile(filepath.Join(blocker, "sub", "dotboot.log"))
	assert.Error(t, err)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("git", []string{"submodule", "update"}, "/home/u/dotfiles")

	out := buf.String()
	assert.Contains(t, out, "git")
	assert.Contains(t, out, "submodule")
	assert.Contains(t, out, "/home/u/dotfiles")
	assert.Contains(t, out, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "install-links")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "install-links")
	assert.Contains(t, out, "duration")
}
