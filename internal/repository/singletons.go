package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

// ProfileRepository stores the single profile document.
type ProfileRepository interface {
	Get(ctx context.Context) (*entity.ProfileData, error)
	Replace(ctx context.Context, profile *entity.ProfileData) error
}

// ExpertiseRepository stores the single expertise document.
type ExpertiseRepository interface {
	Get(ctx context.Context) (*entity.Expertise, error)
	Replace(ctx context.Context, expertise *entity.Expertise) error
}

// PGXProfileRepository implements ProfileRepository using pgx.
type PGXProfileRepository struct {
	pool pgxPool
}

// NewPGXProfileRepository wires a pgx backed repository.
func NewPGXProfileRepository(pool *pgxpool.Pool) *PGXProfileRepository {
	return &PGXProfileRepository{pool: pool}
}

// Get returns the stored profile or ErrNotFound.
func (r *PGXProfileRepository) Get(ctx context.Context) (*entity.ProfileData, error) {
	row := r.pool.QueryRow(ctx, `SELECT id::text, personal, updated_at FROM profile_data LIMIT 1`)

	var profile entity.ProfileData
	if err := row.Scan(&profile.ID, &profile.Personal, &profile.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &profile, nil
}

// Replace upserts the singleton row. The document id survives overwrites.
func (r *PGXProfileRepository) Replace(ctx context.Context, profile *entity.ProfileData) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO profile_data (singleton, personal, updated_at)
        VALUES (TRUE, $1, $2)
        ON CONFLICT (singleton) DO UPDATE
        SET personal = EXCLUDED.personal, updated_at = EXCLUDED.updated_at
        RETURNING id::text, updated_at
    `, profile.Personal, profile.UpdatedAt)

	if err := row.Scan(&profile.ID, &profile.UpdatedAt); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// PGXExpertiseRepository implements ExpertiseRepository using pgx.
type PGXExpertiseRepository struct {
	pool pgxPool
}

// NewPGXExpertiseRepository wires a pgx backed repository.
func NewPGXExpertiseRepository(pool *pgxpool.Pool) *PGXExpertiseRepository {
	return &PGXExpertiseRepository{pool: pool}
}

// Get returns the stored expertise showcase or ErrNotFound.
func (r *PGXExpertiseRepository) Get(ctx context.Context) (*entity.Expertise, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id::text, title, subtitle, description, achievements, metrics, updated_at
        FROM truffle_expertise LIMIT 1
    `)

	var e entity.Expertise
	if err := row.Scan(&e.ID, &e.Title, &e.Subtitle, &e.Description, &e.Achievements, &e.Metrics, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query expertise: %w", err)
	}
	e.Achievements = stringSliceOrEmpty(e.Achievements)
	if e.Metrics == nil {
		e.Metrics = []entity.ExpertiseMetric{}
	}
	return &e, nil
}

// Replace upserts the singleton row.
func (r *PGXExpertiseRepository) Replace(ctx context.Context, expertise *entity.Expertise) error {
	metrics := expertise.Metrics
	if metrics == nil {
		metrics = []entity.ExpertiseMetric{}
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO truffle_expertise (singleton, title, subtitle, description, achievements, metrics, updated_at)
        VALUES (TRUE, $1, $2, $3, $4, $5, $6)
        ON CONFLICT (singleton) DO UPDATE
        SET title = EXCLUDED.title, subtitle = EXCLUDED.subtitle, description = EXCLUDED.description,
            achievements = EXCLUDED.achievements, metrics = EXCLUDED.metrics, updated_at = EXCLUDED.updated_at
        RETURNING id::text, updated_at
    `,
		expertise.Title,
		expertise.Subtitle,
		expertise.Description,
		stringSliceOrEmpty(expertise.Achievements),
		metrics,
		expertise.UpdatedAt,
	)

	if err := row.Scan(&expertise.ID, &expertise.UpdatedAt); err != nil {
		return fmt.Errorf("replace expertise: %w", err)
	}
	return nil
}
