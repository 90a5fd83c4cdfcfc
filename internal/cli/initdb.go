package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcmunich/robert-chang-portfolio/internal/database"
)

// NewInitDBCommand creates the init-db command.
func NewInitDBCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:           "init-db",
		Short:         "Create missing tables and indexes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return withBackend(cmd, rootOpts, open, func(ctx context.Context, b *Backend) error {
				formatter.VerboseLog("applying bootstrap schema")
				if err := database.Bootstrap(ctx, b.Schema); err != nil {
					return WrapExitError(ExitFailure, "init-db", err)
				}
				result := map[string]string{"status": "ok"}
				return formatter.Write(result, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, "schema is up to date")
					return err
				})
			})
		},
	}
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
