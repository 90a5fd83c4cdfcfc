package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in content into the store",
		Long: `Write the built-in profile, experience, testimonials and expertise
into the store so they can be edited through the API.

Content types that already hold data are left alone unless --force is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return withBackend(cmd, rootOpts, open, func(ctx context.Context, b *Backend) error {
				report, err := b.Seeder.Seed(ctx, force)
				if err != nil {
					return WrapExitError(ExitFailure, "seed", err)
				}
				return formatter.Write(report, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "profile: %t\nexpertise: %t\nexperiences: %d\ntestimonials: %d\n",
						report.Profile, report.Expertise, report.Experiences, report.Testimonials)
					return err
				})
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite singletons and append list defaults even when content exists")
	return cmd
}
