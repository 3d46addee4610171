// Package bootstrap runs a complete dotboot pass: it resolves the
// repository URL, makes sure the working copy exists with its submodules,
// then installs the configured links into the home directory.
package bootstrap

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/dotboot/pkg/acquire"
	"github.com/arthur-debert/dotboot/pkg/config"
	"github.com/arthur-debert/dotboot/pkg/display"
	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/git"
	"github.com/arthur-debert/dotboot/pkg/links"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/paths"
	"github.com/arthur-debert/dotboot/pkg/types"
)

// Options holds everything a run needs. Nil FS, Reporter and Prompter fall
// back to the OS filesystem, a silent reporter and no prompting.
type Options struct {
	Config   *config.Config
	Home     string
	Git      git.Client
	FS       types.FS
	Reporter display.Reporter
	Prompter git.Prompter
	DryRun   bool
}

// Summary describes a finished run
type Summary struct {
	RepoURL  string
	LocalDir string
	Links    []links.Result
}

// Run executes the bootstrap. Each step must succeed before the next one
// starts; the first error is reported and returned.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = display.Discard
	}

	summary, err := run(ctx, opts, reporter)
	if err != nil {
		reporter.Failed(err)
		return summary, err
	}

	if opts.DryRun {
		reporter.Done("Dry run complete, nothing was changed")
	} else {
		reporter.Done("Bootstrap complete!")
	}
	return summary, nil
}

func run(ctx context.Context, opts Options, reporter display.Reporter) (*Summary, error) {
	logger := logging.GetLogger("bootstrap")
	done := logging.LogOperationStart(logger, "bootstrap")
	defer done()

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration given")
	}
	if opts.Git == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no git client given")
	}

	home := opts.Home
	if home == "" {
		h, err := paths.HomeDir()
		if err != nil {
			return nil, err
		}
		home = h
	}

	// Link targets are written verbatim, so the working copy path must be
	// absolute. Relative dirs are taken from the home directory.
	localDir := paths.ExpandHome(opts.Config.Repository.Dir, home)
	if localDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "repository dir cannot be empty")
	}
	if !filepath.IsAbs(localDir) {
		localDir = filepath.Join(home, localDir)
	}
	localDir = filepath.Clean(localDir)

	reporter.Step("Bootstrapping your environment")

	url, err := resolveURL(ctx, opts)
	if err != nil {
		return nil, err
	}
	summary := &Summary{RepoURL: url, LocalDir: localDir}

	logger.Info().
		Str("url", url).
		Str("dir", localDir).
		Str("home", home).
		Bool("dryRun", opts.DryRun).
		Msg("Starting bootstrap")

	acq := acquire.New(acquire.Options{
		Git:      opts.Git,
		FS:       opts.FS,
		Reporter: reporter,
		DryRun:   opts.DryRun,
	})
	if err := acq.EnsureRepository(ctx, url, localDir); err != nil {
		return summary, err
	}

	inst := links.New(links.Options{
		FS:       opts.FS,
		Reporter: reporter,
		DryRun:   opts.DryRun,
	})
	results, err := inst.InstallLinks(opts.Config.Links, localDir, home)
	summary.Links = results
	if err != nil {
		return summary, err
	}

	return summary, nil
}

func resolveURL(ctx context.Context, opts Options) (string, error) {
	url := opts.Config.Repository.URL
	if !git.NeedsUser(url) {
		return url, nil
	}

	user := opts.Config.Repository.User
	if user == "" {
		resolved, err := git.ResolveUser(ctx, opts.Git, opts.Prompter)
		if err != nil {
			return "", err
		}
		user = resolved
	}
	return git.ExpandURL(url, user), nil
}
