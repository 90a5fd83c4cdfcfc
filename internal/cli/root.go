package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rcmunich/robert-chang-portfolio/internal/database"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DatabaseURL string
	Format      string // "text" | "json" | "yaml"
	Verbose     bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Backend is everything the commands need from the store.
type Backend struct {
	Schema   database.Execer
	Seeder   *service.Seeder
	Contacts *service.ContactService
	Close    func()
}

// Opener connects to the store behind dsn.
type Opener func(ctx context.Context, dsn string) (*Backend, error)

// NewRootCommand creates the root command for portfolioctl.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Operate the portfolio content store",
		Long:  "Bootstrap the schema, seed the built-in content and triage contact submissions.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN (defaults to $DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewInitDBCommand(opts, open))
	cmd.AddCommand(NewSeedCommand(opts, open))
	cmd.AddCommand(NewContactsCommand(opts, open))

	return cmd
}

// withBackend opens the store, runs fn and releases the connection.
func withBackend(cmd *cobra.Command, opts *RootOptions, open Opener, fn func(ctx context.Context, b *Backend) error) error {
	if opts.DatabaseURL == "" {
		return NewExitError(ExitCommandError, "no database configured: set --database-url or DATABASE_URL")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backend, err := open(ctx, opts.DatabaseURL)
	if err != nil {
		return WrapExitError(ExitCommandError, "connect database", err)
	}
	if backend.Close != nil {
		defer backend.Close()
	}
	return fn(ctx, backend)
}
