package git

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/runner"
	"github.com/arthur-debert/dotboot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellClient_Clone(t *testing.T) {
	rec := &testutil.RecordingRunner{}
	client := NewShellClient(rec, "")

	err := client.Clone(context.Background(), "git@github.com:octocat/dotfiles.git", "/home/u/dotfiles")
	require.NoError(t, err)

	require.Len(t, rec.Commands, 1)
	assert.Equal(t, runner.Command{
		Name: "git",
		Args: []string{"clone", "--recurse-submodules", "git@github.com:octocat/dotfiles.git", "/home/u/dotfiles"},
	}, rec.Commands[0])
}

func TestShellClient_CloneFailure(t *testing.T) {
	rec := &testutil.RecordingRunner{
		RunFunc: func(runner.Command) error {
			return errors.New(errors.ErrCommandFailed, "exit status 128")
		},
	}
	client := NewShellClient(rec, "")

	err := client.Clone(context.Background(), "url", "/tmp/x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitClone))
	assert.Equal(t, "url", errors.GetErrorDetails(err)["url"])
}

func TestShellClient_SyncSubmodules(t *testing.T) {
	rec := &testutil.RecordingRunner{}
	client := NewShellClient(rec, "/usr/local/bin/git")

	require.NoError(t, client.SyncSubmodules(context.Background(), "/home/u/dotfiles"))

	require.Len(t, rec.Commands, 1)
	cmd := rec.Commands[0]
	assert.Equal(t, "/usr/local/bin/git", cmd.Name)
	assert.Equal(t, []string{"submodule", "update", "--init", "--recursive"}, cmd.Args)
	assert.Equal(t, "/home/u/dotfiles", cmd.Dir, "submodule sync runs inside the working copy")
}

func TestShellClient_SyncSubmodulesFailure(t *testing.T) {
	rec := &testutil.RecordingRunner{
		RunFunc: func(runner.Command) error { return stderrors.New("boom") },
	}
	err := NewShellClient(rec, "").SyncSubmodules(context.Background(), "/d")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSubmoduleSync))
}

func TestShellClient_ConfigValue(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		rec := &testutil.RecordingRunner{
			OutputFunc: func(runner.Command) (string, error) { return "octocat", nil },
		}
		v, err := NewShellClient(rec, "").ConfigValue(context.Background(), "github.user")
		require.NoError(t, err)
		assert.Equal(t, "octocat", v)
		assert.Equal(t, []string{"config", "--global", "github.user"}, rec.Commands[0].Args)
	})

	t.Run("unset key exits 1", func(t *testing.T) {
		rec := &testutil.RecordingRunner{
			OutputFunc: func(runner.Command) (string, error) {
				return "", errors.New(errors.ErrCommandFailed, "exit status 1").WithDetail("exitCode", 1)
			},
		}
		v, err := NewShellClient(rec, "").ConfigValue(context.Background(), "github.user")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		rec := &testutil.RecordingRunner{
			OutputFunc: func(runner.Command) (string, error) {
				return "", errors.New(errors.ErrCommandFailed, "exec: git not found")
			},
		}
		_, err := NewShellClient(rec, "").ConfigValue(context.Background(), "github.user")
		assert.Error(t, err)
	})
}
