package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

// NewContactsCommand creates the contacts command group.
func NewContactsCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect and triage contact submissions",
	}
	cmd.AddCommand(newContactsListCommand(rootOpts, open))
	cmd.AddCommand(newContactsStatusCommand(rootOpts, open))
	return cmd
}

func newContactsListCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List submissions, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return withBackend(cmd, rootOpts, open, func(ctx context.Context, b *Backend) error {
				submissions, err := b.Contacts.List(ctx)
				if err != nil {
					return WrapExitError(ExitFailure, "list contacts", err)
				}
				formatter.VerboseLog("%d submission(s)", len(submissions))
				return formatter.Write(submissions, func(w io.Writer) error {
					return writeSubmissionTable(w, submissions)
				})
			})
		},
	}
}

func newContactsStatusCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:           "status <id> <new|read|responded>",
		Short:         "Change the triage status of a submission",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return withBackend(cmd, rootOpts, open, func(ctx context.Context, b *Backend) error {
				changed, err := b.Contacts.UpdateStatus(ctx, args[0], args[1])
				if err != nil {
					return WrapExitError(ExitFailure, "update status", err)
				}
				if !changed {
					return NewExitError(ExitFailure, fmt.Sprintf("submission %s not found or already %s", args[0], strings.ToLower(args[1])))
				}
				result := map[string]string{"id": args[0], "status": strings.ToLower(args[1])}
				return formatter.Write(result, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s -> %s\n", args[0], strings.ToLower(args[1]))
					return err
				})
			})
		},
	}
}

func writeSubmissionTable(w io.Writer, submissions []entity.ContactSubmission) error {
	if len(submissions) == 0 {
		_, err := fmt.Fprintln(w, "no submissions")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSUBMITTED\tSTATUS\tINQUIRY\tFROM\tSUBJECT")
	for _, s := range submissions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s <%s>\t%s\n",
			s.ID, s.SubmittedAt.UTC().Format(time.RFC3339), s.Status, s.InquiryType, s.Name, s.Email, s.Subject)
	}
	return tw.Flush()
}
