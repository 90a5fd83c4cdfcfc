package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

// ExperiencesRepository persists work history entries.
type ExperiencesRepository interface {
	ListActive(ctx context.Context) ([]entity.Experience, error)
	FindByID(ctx context.Context, id string) (*entity.Experience, error)
	Create(ctx context.Context, experience *entity.Experience) error
	Update(ctx context.Context, experience *entity.Experience) error
	Archive(ctx context.Context, id string) (bool, error)
}

// PGXExperiencesRepository implements ExperiencesRepository using pgx.
type PGXExperiencesRepository struct {
	pool pgxPool
}

// NewPGXExperiencesRepository wires a pgx backed repository.
func NewPGXExperiencesRepository(pool *pgxpool.Pool) *PGXExperiencesRepository {
	return &PGXExperiencesRepository{pool: pool}
}

const experienceColumns = `id::text, company, position, duration, location, description, achievements, sort_order, lifecycle`

// ListActive returns active entries ordered by their sort key.
func (r *PGXExperiencesRepository) ListActive(ctx context.Context) ([]entity.Experience, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE `+activeOnly+` ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []entity.Experience
	for rows.Next() {
		experience, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience row: %w", err)
		}
		experiences = append(experiences, experience)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiences: %w", err)
	}
	return experiences, nil
}

// FindByID returns the entry regardless of its lifecycle.
func (r *PGXExperiencesRepository) FindByID(ctx context.Context, id string) (*entity.Experience, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)

	experience, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query experience by id: %w", err)
	}
	return &experience, nil
}

// Create inserts the entry and assigns its generated id.
func (r *PGXExperiencesRepository) Create(ctx context.Context, experience *entity.Experience) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO experiences (company, position, duration, location, description, achievements, sort_order, lifecycle)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id::text
    `,
		experience.Company,
		experience.Position,
		experience.Duration,
		experience.Location,
		experience.Description,
		stringSliceOrEmpty(experience.Achievements),
		experience.Order,
		string(experience.Lifecycle),
	)

	if err := row.Scan(&experience.ID); err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}
	return nil
}

// Update overwrites every mutable field of the entry with the same id and
// refreshes experience from the stored row.
func (r *PGXExperiencesRepository) Update(ctx context.Context, experience *entity.Experience) error {
	row := r.pool.QueryRow(ctx, `
        UPDATE experiences
        SET company = $2, position = $3, duration = $4, location = $5, description = $6,
            achievements = $7, sort_order = $8, lifecycle = $9
        WHERE id = $1
        RETURNING `+experienceColumns,
		experience.ID,
		experience.Company,
		experience.Position,
		experience.Duration,
		experience.Location,
		experience.Description,
		stringSliceOrEmpty(experience.Achievements),
		experience.Order,
		string(experience.Lifecycle),
	)

	updated, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update experience: %w", err)
	}
	*experience = updated
	return nil
}

// Archive hides the entry from listings and reports whether it was active.
func (r *PGXExperiencesRepository) Archive(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE experiences SET lifecycle = $2 WHERE id = $1 AND lifecycle <> $2`, id, string(entity.LifecycleArchived))
	if err != nil {
		return false, fmt.Errorf("archive experience: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanExperience(row pgx.Row) (entity.Experience, error) {
	var (
		e         entity.Experience
		lifecycle string
	)
	if err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Duration, &e.Location, &e.Description, &e.Achievements, &e.Order, &lifecycle); err != nil {
		return entity.Experience{}, err
	}
	e.Achievements = stringSliceOrEmpty(e.Achievements)
	e.Lifecycle = entity.Lifecycle(lifecycle)
	return e, nil
}
