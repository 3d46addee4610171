package dotboot

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/dotboot/internal/version"
	"github.com/arthur-debert/dotboot/pkg/bootstrap"
	"github.com/arthur-debert/dotboot/pkg/config"
	"github.com/arthur-debert/dotboot/pkg/display"
	"github.com/arthur-debert/dotboot/pkg/git"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/paths"
	"github.com/arthur-debert/dotboot/pkg/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the external capabilities the commands use
type Deps struct {
	// NewGit builds the git client; out receives streamed git output
	NewGit   func(binary string, out io.Writer, reporter display.Reporter) git.Client
	Prompter git.Prompter
}

// DefaultDeps runs the real git binary and prompts on the terminal
func DefaultDeps() Deps {
	return Deps{
		NewGit: func(binary string, out io.Writer, reporter display.Reporter) git.Client {
			r := runner.NewExecRunner(out)
			r.Observe = func(c runner.Command) { reporter.Command(c.String()) }
			return git.NewShellClient(r, binary)
		},
		Prompter: display.TerminalPrompter{},
	}
}

// globalFlags are shared by every command
type globalFlags struct {
	verbosity  int
	dryRun     bool
	configFile string
	repo       string
	dir        string
}

// overrides turns explicitly set flags into config keys
func (f *globalFlags) overrides() map[string]interface{} {
	out := make(map[string]interface{})
	if f.repo != "" {
		out["repository.url"] = f.repo
	}
	if f.dir != "" {
		out["repository.dir"] = f.dir
	}
	return out
}

func (f *globalFlags) loadConfig(home string) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		Home:       home,
		ConfigFile: f.configFile,
		Overrides:  f.overrides(),
	})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(DefaultDeps())
}

// NewRootCmdWithDeps creates the root command with injected capabilities
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "dotboot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, flags, deps)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.repo, "repo", "", MsgFlagRepo)
	rootCmd.PersistentFlags().StringVar(&flags.dir, "dir", "", MsgFlagDir)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runBootstrap(cmd *cobra.Command, flags *globalFlags, deps Deps) error {
	home, err := paths.HomeDir()
	if err != nil {
		return fmt.Errorf(MsgErrHome, err)
	}

	cfg, err := flags.loadConfig(home)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reporter := display.NewConsoleReporter(out)

	_, err = bootstrap.Run(cmd.Context(), bootstrap.Options{
		Config:   cfg,
		Home:     home,
		Git:      deps.NewGit(cfg.Git.Binary, out, reporter),
		Reporter: reporter,
		Prompter: deps.Prompter,
		DryRun:   flags.dryRun,
	})
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// reportedError marks an error the console reporter has already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user during the
// run, so callers only need to set the exit status
func IsReported(err error) bool {
	var reported *reportedError
	return stderrors.As(err, &reported)
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := paths.HomeDir()
			if err != nil {
				return fmt.Errorf(MsgErrHome, err)
			}

			cfg, err := flags.loadConfig(home)
			if err != nil {
				return err
			}

			data, err := cfg.Render(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatTOML, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
