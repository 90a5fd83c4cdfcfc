package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

// TestimonialsRepository persists testimonials.
type TestimonialsRepository interface {
	ListActive(ctx context.Context) ([]entity.Testimonial, error)
	FindByID(ctx context.Context, id string) (*entity.Testimonial, error)
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Archive(ctx context.Context, id string) (bool, error)
}

// PGXTestimonialsRepository implements TestimonialsRepository using pgx.
type PGXTestimonialsRepository struct {
	pool pgxPool
}

// NewPGXTestimonialsRepository wires a pgx backed repository.
func NewPGXTestimonialsRepository(pool *pgxpool.Pool) *PGXTestimonialsRepository {
	return &PGXTestimonialsRepository{pool: pool}
}

const testimonialColumns = `id::text, name, title, content, avatar, sort_order, lifecycle`

// ListActive returns active testimonials ordered by their sort key.
func (r *PGXTestimonialsRepository) ListActive(ctx context.Context) ([]entity.Testimonial, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE `+activeOnly+` ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []entity.Testimonial
	for rows.Next() {
		testimonial, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, testimonial)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}
	return testimonials, nil
}

// FindByID returns the testimonial regardless of its lifecycle.
func (r *PGXTestimonialsRepository) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)

	testimonial, err := scanTestimonial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query testimonial by id: %w", err)
	}
	return &testimonial, nil
}

// Create inserts the testimonial and assigns its generated id.
func (r *PGXTestimonialsRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO testimonials (name, title, content, avatar, sort_order, lifecycle)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id::text
    `,
		testimonial.Name,
		testimonial.Title,
		testimonial.Content,
		testimonial.Avatar,
		testimonial.Order,
		string(testimonial.Lifecycle),
	)

	if err := row.Scan(&testimonial.ID); err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

// Update overwrites every mutable field of the testimonial with the same id.
func (r *PGXTestimonialsRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	row := r.pool.QueryRow(ctx, `
        UPDATE testimonials
        SET name = $2, title = $3, content = $4, avatar = $5, sort_order = $6, lifecycle = $7
        WHERE id = $1
        RETURNING `+testimonialColumns,
		testimonial.ID,
		testimonial.Name,
		testimonial.Title,
		testimonial.Content,
		testimonial.Avatar,
		testimonial.Order,
		string(testimonial.Lifecycle),
	)

	updated, err := scanTestimonial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update testimonial: %w", err)
	}
	*testimonial = updated
	return nil
}

// Archive hides the testimonial from listings and reports whether it was active.
func (r *PGXTestimonialsRepository) Archive(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE testimonials SET lifecycle = $2 WHERE id = $1 AND lifecycle <> $2`, id, string(entity.LifecycleArchived))
	if err != nil {
		return false, fmt.Errorf("archive testimonial: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanTestimonial(row pgx.Row) (entity.Testimonial, error) {
	var (
		t         entity.Testimonial
		lifecycle string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Title, &t.Content, &t.Avatar, &t.Order, &lifecycle); err != nil {
		return entity.Testimonial{}, err
	}
	t.Lifecycle = entity.Lifecycle(lifecycle)
	return t, nil
}
