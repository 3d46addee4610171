package dotboot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Clone your dotfiles and link them into your home directory"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/dotboot/config.toml)"
	MsgFlagRepo    = "Remote repository URL, may contain {user}"
	MsgFlagDir     = "Local working copy directory"
	MsgFlagFormat  = "Output format (toml or yaml)"

	// Version output
	MsgVersionFormat = "dotboot version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrHome = "failed to resolve home directory: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
