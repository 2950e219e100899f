package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/dotfiles/internal/version"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/ui"
	"github.com/arthur-debert/dotfiles/pkg/types"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <paths>...",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "files",
		Example: `  dotfiles add ~/.bashrc ~/.config/nvim`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}

			// Every path must exist before anything is moved
			for _, arg := range args {
				if err := m.RequireExists(arg); err != nil {
					return err
				}
				a.printer.Message(MsgAdding, arg)
			}

			outcomes, err := m.AdoptAll(args)
			a.report(outcomes, MsgAdded)
			if err != nil {
				return err
			}
			a.finish()
			return nil
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <paths>...",
		Short:   MsgRmShort,
		Long:    MsgRmLong,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}

			for _, arg := range args {
				a.printer.Message(MsgRemoving, arg)
			}

			outcomes, err := m.EvictAll(args)
			a.report(outcomes, MsgRemoved)
			if err != nil {
				return err
			}
			a.finish()
			return nil
		},
	}
}

// report prints skips as warnings and completed items as verbose detail
func (a *app) report(outcomes []types.Outcome, doneFormat string) {
	for _, o := range outcomes {
		if o.IsSkipped() {
			a.printer.Warning(MsgSkipping, o.Path, o.Message())
			continue
		}
		a.printer.Detail(doneFormat, o.Path, o.MirrorPath)
	}
}

func newSetupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Args:    cobra.NoArgs,
		GroupID: "files",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}
			if err := m.Setup(); err != nil {
				return err
			}
			a.finish()
			return nil
		},
	}
}

func newMvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mv <src> <dest>",
		Short:   MsgMvShort,
		Args:    cobra.ExactArgs(2),
		GroupID: "files",
		Run: func(cmd *cobra.Command, args []string) {
			a.logger.Debug().Str("src", args[0]).Str("dest", args[1]).Msg("mv requested")
			a.printer.Warning(MsgMvNotice)
		},
	}
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Args:    cobra.NoArgs,
		GroupID: "repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}
			return m.Sync(cmd.Context())
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Args:    cobra.NoArgs,
		GroupID: "repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}
			return m.Update(cmd.Context())
		},
	}
}

func newPushCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "push",
		Short:   MsgPushShort,
		Args:    cobra.NoArgs,
		GroupID: "repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}
			return m.Push(cmd.Context())
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "diff",
		Short:   MsgDiffShort,
		Args:    cobra.NoArgs,
		GroupID: "repo",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.newManager()
			if err != nil {
				return err
			}
			return m.Diff(cmd.Context())
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.config")
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			logger.Debug().Int("bytes", len(out)).Msg("Rendered configuration")

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

// ReportError prints err in the error style, followed by its code and
// details when it is an *errors.Error
func ReportError(out io.Writer, err error) {
	printer := ui.NewPrinter(out, true)
	printer.Error(MsgErrorFormat, err)

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return
	}
	printer.Detail(MsgErrorDetail, MsgErrorCodeKey, code)

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		printer.Detail(MsgErrorDetail, key, details[key])
	}
}
