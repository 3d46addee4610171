// Package git provides the version control operations dotboot needs:
// cloning the dotfiles repository, synchronizing its submodules and
// reading global git configuration.
package git

import (
	"context"

	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/runner"
)

// DefaultBinary is the git executable looked up on PATH
const DefaultBinary = "git"

// Client provides git operations for repository management
type Client interface {
	// Clone clones url into dir, checking out submodules recursively
	Clone(ctx context.Context, url, dir string) error
	// SyncSubmodules initializes and recursively updates all submodules of the
	// working copy at dir
	SyncSubmodules(ctx context.Context, dir string) error
	// ConfigValue returns a global git configuration value, or "" when unset
	ConfigValue(ctx context.Context, key string) (string, error)
}

// ShellClient implements Client by shelling out to the git command
type ShellClient struct {
	runner runner.Runner
	binary string
}

// NewShellClient creates a git client that runs binary through r. An empty
// binary means DefaultBinary.
func NewShellClient(r runner.Runner, binary string) *ShellClient {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ShellClient{runner: r, binary: binary}
}

// CloneCommand is the command Clone runs
func (c *ShellClient) CloneCommand(url, dir string) runner.Command {
	return runner.Command{
		Name: c.binary,
		Args: []string{"clone", "--recurse-submodules", url, dir},
	}
}

// SyncSubmodulesCommand is the command SyncSubmodules runs
func (c *ShellClient) SyncSubmodulesCommand(dir string) runner.Command {
	return runner.Command{
		Name: c.binary,
		Args: []string{"submodule", "update", "--init", "--recursive"},
		Dir:  dir,
	}
}

// Clone clones the repository with all of its submodules
func (c *ShellClient) Clone(ctx context.Context, url, dir string) error {
	if err := c.runner.Run(ctx, c.CloneCommand(url, dir)); err != nil {
		return errors.Wrapf(err, errors.ErrGitClone, "failed to clone %s into %s", url, dir).
			WithDetail("url", url).
			WithDetail("dir", dir)
	}
	return nil
}

// SyncSubmodules runs the submodule update inside dir
func (c *ShellClient) SyncSubmodules(ctx context.Context, dir string) error {
	if err := c.runner.Run(ctx, c.SyncSubmodulesCommand(dir)); err != nil {
		return errors.Wrapf(err, errors.ErrSubmoduleSync, "failed to update submodules in %s", dir).
			WithDetail("dir", dir)
	}
	return nil
}

// ConfigValue reads key from the global git configuration. git exits with
// status 1 for an unset key, which is reported as an empty value.
func (c *ShellClient) ConfigValue(ctx context.Context, key string) (string, error) {
	value, err := c.runner.Output(ctx, runner.Command{
		Name: c.binary,
		Args: []string{"config", "--global", key},
	})
	if err != nil {
		if code, ok := errors.GetErrorDetails(err)["exitCode"].(int); ok && code == 1 {
			logger := logging.GetLogger("git")
			logger.Debug().Str("key", key).Msg("git config key not set")
			return "", nil
		}
		return "", err
	}
	return value, nil
}
