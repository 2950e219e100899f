package cli

import (
	"github.com/arthur-debert/dotfiles/internal/version"
	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/dotfiles"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation
type app struct {
	verbosity  int
	dryRun     bool
	configFile string
	dataRoot   string

	logger  zerolog.Logger
	printer *ui.Printer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "dotfiles",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.SetupLogger(a.verbosity)
			a.printer = ui.NewPrinter(cmd.OutOrStdout(), a.verbosity > 0)
			a.logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.dataRoot, "data-root", "", MsgFlagDataRoot)

	rootCmd.AddGroup(
		&cobra.Group{ID: "files", Title: "Managing files:"},
		&cobra.Group{ID: "repo", Title: "Syncing the repository:"},
	)

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newRmCmd(a))
	rootCmd.AddCommand(newSetupCmd(a))
	rootCmd.AddCommand(newMvCmd(a))
	rootCmd.AddCommand(newSyncCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newPushCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig resolves the configuration for this invocation
func (a *app) loadConfig() (*config.Config, error) {
	opts := config.LoadOptions{ConfigFile: a.configFile}
	if a.dataRoot != "" {
		opts.Overrides = map[string]interface{}{"data_root": a.dataRoot}
	}
	return config.Load(opts)
}

// newManager loads the configuration and builds a manager reporting
// progress through the printer
func (a *app) newManager() (*dotfiles.Manager, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("repo", cfg.RepoRoot()).
		Str("home", cfg.HomeDir).
		Bool("dryRun", a.dryRun).
		Msg("Configuration loaded")

	return dotfiles.New(cfg,
		dotfiles.WithLogger(logging.GetLogger("dotfiles")),
		dotfiles.WithDryRun(a.dryRun),
		dotfiles.WithProgress(func(msg string) { a.printer.Message("%s", msg) }),
	)
}

// finish prints the dry-run notice after a mutating command
func (a *app) finish() {
	if a.dryRun {
		a.printer.Warning(MsgDryRunNotice)
	}
}
