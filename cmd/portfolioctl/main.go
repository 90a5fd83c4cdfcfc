package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/rcmunich/robert-chang-portfolio/internal/cli"
	"github.com/rcmunich/robert-chang-portfolio/internal/database"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

func main() {
	cmd := cli.NewRootCommand(openBackend)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

func openBackend(ctx context.Context, dsn string) (*cli.Backend, error) {
	pool, err := database.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	profiles := repository.NewPGXProfileRepository(pool)
	experiences := repository.NewPGXExperiencesRepository(pool)
	testimonials := repository.NewPGXTestimonialsRepository(pool)
	expertise := repository.NewPGXExpertiseRepository(pool)
	contacts := repository.NewPGXContactSubmissionsRepository(pool)

	return &cli.Backend{
		Schema:   pool,
		Seeder:   service.NewSeeder(profiles, experiences, testimonials, expertise),
		Contacts: service.NewContactService(contacts, nil),
		Close:    pool.Close,
	}, nil
}
