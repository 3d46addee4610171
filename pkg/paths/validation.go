package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotboot/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It rejects empty paths, null bytes and paths over the common
// filesystem length limit.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateRelative checks that path is a valid relative path that stays
// inside whatever directory it is later joined to.
func ValidateRelative(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	if filepath.IsAbs(path) {
		return errors.Newf(errors.ErrInvalidInput, "path %q must be relative", path)
	}

	if !filepath.IsLocal(path) {
		return errors.Newf(errors.ErrInvalidInput, "path %q escapes its base directory", path)
	}

	return nil
}

// ContainsPath checks if child is contained within parent.
// Both paths are cleaned before comparison.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
