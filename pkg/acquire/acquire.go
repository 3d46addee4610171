// Package acquire makes sure a local working copy of the dotfiles
// repository exists and that its submodules are checked out.
package acquire

import (
	"context"
	"fmt"

	"github.com/arthur-debert/dotboot/pkg/display"
	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/filesystem"
	"github.com/arthur-debert/dotboot/pkg/git"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures an Acquirer
type Options struct {
	Git      git.Client
	FS       types.FS
	Reporter display.Reporter
	DryRun   bool
}

// Acquirer clones the repository when needed and always syncs submodules
type Acquirer struct {
	git      git.Client
	fs       types.FS
	reporter display.Reporter
	dryRun   bool
	logger   zerolog.Logger
}

// New creates an Acquirer. A nil FS means the OS filesystem and a nil
// Reporter discards progress.
func New(opts Options) *Acquirer {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = display.Discard
	}
	return &Acquirer{
		git:      opts.Git,
		fs:       fsys,
		reporter: reporter,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("acquire"),
	}
}

// EnsureRepository clones remoteURL into localPath if localPath does not
// exist, then initializes and updates all submodules recursively. The first
// failure is returned and nothing after it runs.
func (a *Acquirer) EnsureRepository(ctx context.Context, remoteURL, localPath string) error {
	done := logging.LogOperationStart(a.logger, "ensure-repository")
	defer done()

	exists, err := filesystem.Exists(a.fs, localPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRepoAccess, "cannot inspect %s", localPath).
			WithDetail("dir", localPath)
	}

	if exists {
		a.logger.Info().Str("dir", localPath).Msg("Working copy present, skipping clone")
		a.reporter.Skipped(fmt.Sprintf("Working copy already present at %s", localPath))
	} else {
		a.reporter.Step(fmt.Sprintf("Cloning dotfiles repo from %s...", remoteURL))
		if a.dryRun {
			a.reporter.Skipped(fmt.Sprintf("dry run: would clone %s into %s", remoteURL, localPath))
		} else if err := a.git.Clone(ctx, remoteURL, localPath); err != nil {
			a.logger.Error().Err(err).Str("url", remoteURL).Str("dir", localPath).Msg("Clone failed")
			return err
		}
	}

	a.reporter.Step("Initializing git submodules...")
	if a.dryRun {
		a.reporter.Skipped(fmt.Sprintf("dry run: would update submodules in %s", localPath))
		return nil
	}
	if err := a.git.SyncSubmodules(ctx, localPath); err != nil {
		a.logger.Error().Err(err).Str("dir", localPath).Msg("Submodule sync failed")
		return err
	}

	a.logger.Info().Str("dir", localPath).Msg("Working copy ready")
	return nil
}
