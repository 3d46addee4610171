// Package links installs symlinks from the home directory into the dotfiles
// working copy, replacing whatever previously occupied each destination.
package links

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/dotboot/pkg/config"
	"github.com/arthur-debert/dotboot/pkg/display"
	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/filesystem"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/paths"
	"github.com/arthur-debert/dotboot/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures an Installer
type Options struct {
	FS       types.FS
	Reporter display.Reporter
	DryRun   bool
}

// Installer creates the configured symlinks
type Installer struct {
	fs       types.FS
	reporter display.Reporter
	dryRun   bool
	logger   zerolog.Logger
}

// Result describes what happened to a single link
type Result struct {
	Source      string
	Destination string
	// Previous is what occupied Destination before it was replaced
	Previous types.EntryKind
	DryRun   bool
}

// New creates an Installer. A nil FS means the OS filesystem and a nil
// Reporter discards progress.
func New(opts Options) *Installer {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = display.Discard
	}
	return &Installer{
		fs:       fsys,
		reporter: reporter,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("links"),
	}
}

// InstallLinks processes links in order and stops at the first failure.
// Results for the links completed before the failure are returned along
// with the error.
func (i *Installer) InstallLinks(links []config.Link, localPath, homePath string) ([]Result, error) {
	done := logging.LogOperationStart(i.logger, "install-links")
	defer done()

	i.reporter.Step("Creating symlinks...")
	results := make([]Result, 0, len(links))
	for _, link := range links {
		res, err := i.LinkOne(link, localPath, homePath)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	i.logger.Info().Int("count", len(results)).Msg("Links installed")
	return results, nil
}

// LinkOne makes homePath/link.Destination a symlink to
// localPath/link.Source. An existing symlink or file at the destination is
// unlinked and an existing directory is removed with its contents. A
// symlink that points at a directory is unlinked, never followed. Missing
// parent directories of the destination are created.
func (i *Installer) LinkOne(link config.Link, localPath, homePath string) (Result, error) {
	source := filepath.Join(localPath, link.Source)
	dest := filepath.Join(homePath, link.Destination)
	res := Result{Source: source, Destination: dest, DryRun: i.dryRun}

	log := i.logger.With().Str("source", source).Str("destination", dest).Logger()

	if filepath.Clean(dest) == filepath.Clean(homePath) {
		return res, errors.Newf(errors.ErrInvalidInput,
			"refusing to replace the home directory %s with a link", homePath).
			WithDetail("destination", dest)
	}
	if !paths.ContainsPath(homePath, dest) {
		return res, errors.Newf(errors.ErrInvalidInput,
			"destination %s is outside the home directory %s", dest, homePath).
			WithDetail("destination", dest)
	}

	kind, err := filesystem.Classify(i.fs, dest)
	if err != nil {
		return res, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", dest).
			WithDetail("destination", dest)
	}
	res.Previous = kind

	if kind.Present() {
		i.reporter.Removing(dest, kind)
		if err := i.remove(dest, kind); err != nil {
			log.Error().Err(err).Str("kind", string(kind)).Msg("Failed to remove existing entry")
			return res, errors.Wrapf(err, errors.ErrLinkRemove, "failed to remove existing %s %s", kind, dest).
				WithDetail("destination", dest).
				WithDetail("kind", string(kind))
		}
	}

	parent := filepath.Dir(dest)
	if !i.dryRun {
		if err := i.fs.MkdirAll(parent, 0755); err != nil {
			log.Error().Err(err).Msg("Failed to create parent directory")
			return res, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent).
				WithDetail("dir", parent)
		}
	}

	i.reporter.Linked(dest, source)
	if i.dryRun {
		i.reporter.Skipped(fmt.Sprintf("dry run: would link %s -> %s", dest, source))
		return res, nil
	}
	if err := i.fs.Symlink(source, dest); err != nil {
		log.Error().Err(err).Msg("Failed to create symlink")
		return res, errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s -> %s", dest, source).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}

	log.Debug().Str("previous", string(kind)).Msg("Symlink created")
	return res, nil
}

func (i *Installer) remove(path string, kind types.EntryKind) error {
	if i.dryRun {
		return nil
	}
	if kind == types.EntryDirectory {
		return i.fs.RemoveAll(path)
	}
	return i.fs.Remove(path)
}
