package config

import (
	"path/filepath"

	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/paths"
)

// Validate checks the configuration before any side effect happens.
// Duplicate destinations are allowed (the later entry wins) and only logged.
func (c *Config) Validate() error {
	if c.Repository.URL == "" {
		return errors.New(errors.ErrConfigValid, "repository.url cannot be empty")
	}
	if c.Repository.Dir == "" {
		return errors.New(errors.ErrConfigValid, "repository.dir cannot be empty")
	}

	logger := logging.GetLogger("config")
	seen := make(map[string]int, len(c.Links))
	for i, link := range c.Links {
		if err := paths.ValidateRelative(link.Source); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "links[%d].source", i).
				WithDetail("source", link.Source)
		}
		if err := paths.ValidateRelative(link.Destination); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "links[%d].destination", i).
				WithDetail("destination", link.Destination)
		}

		dest := filepath.Clean(link.Destination)
		if dest == "." {
			return errors.Newf(errors.ErrConfigValid, "links[%d].destination cannot be the home directory itself", i)
		}
		if prev, ok := seen[dest]; ok {
			logger.Warn().
				Str("destination", dest).
				Int("first", prev).
				Int("second", i).
				Msg("Two links share a destination, the later one wins")
		}
		seen[dest] = i
	}

	return nil
}
