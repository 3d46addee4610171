package git

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/logging"
)

// UserPlaceholder is replaced in repository URLs by the resolved username
const UserPlaceholder = "{user}"

// Prompter asks the operator for a value interactively
type Prompter interface {
	Prompt(message string) (string, error)
}

// NeedsUser reports whether url contains the username placeholder
func NeedsUser(url string) bool {
	return strings.Contains(url, UserPlaceholder)
}

// ExpandURL substitutes user into every placeholder of url
func ExpandURL(url, user string) string {
	return strings.ReplaceAll(url, UserPlaceholder, user)
}

// ResolveUser determines the GitHub username. It tries github.user, then
// user.name with spaces removed, then asks through prompter. A nil prompter
// skips the last step.
func ResolveUser(ctx context.Context, client Client, prompter Prompter) (string, error) {
	logger := logging.GetLogger("git.user")

	if user, err := client.ConfigValue(ctx, "github.user"); err != nil {
		logger.Warn().Err(err).Msg("Could not read github.user")
	} else if user != "" {
		logger.Debug().Str("user", user).Msg("Using github.user")
		return user, nil
	}

	if name, err := client.ConfigValue(ctx, "user.name"); err != nil {
		logger.Warn().Err(err).Msg("Could not read user.name")
	} else if user := strings.ReplaceAll(name, " ", ""); user != "" {
		logger.Debug().Str("user", user).Msg("Using user.name")
		return user, nil
	}

	if prompter == nil {
		return "", errors.New(errors.ErrUsernameResolve,
			"could not determine GitHub username from git config")
	}

	answer, err := prompter.Prompt("Please enter your GitHub username")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrUsernameResolve, "failed to read GitHub username")
	}

	user := strings.TrimSpace(answer)
	if user == "" {
		return "", errors.New(errors.ErrUsernameResolve, "GitHub username cannot be empty")
	}
	return user, nil
}
