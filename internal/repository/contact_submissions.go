package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
)

// ContactSubmissionsRepository persists contact form submissions.
type ContactSubmissionsRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	List(ctx context.Context) ([]entity.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error)
}

// PGXContactSubmissionsRepository implements ContactSubmissionsRepository using pgx.
type PGXContactSubmissionsRepository struct {
	pool pgxPool
}

// NewPGXContactSubmissionsRepository wires a pgx backed repository.
func NewPGXContactSubmissionsRepository(pool *pgxpool.Pool) *PGXContactSubmissionsRepository {
	return &PGXContactSubmissionsRepository{pool: pool}
}

const contactColumns = `id::text, name, email, subject, message, inquiry_type, submitted_at, status, ip_address, user_agent`

// Create inserts the submission and fills in its generated id and timestamp.
func (r *PGXContactSubmissionsRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO contact_submissions (name, email, subject, message, inquiry_type, submitted_at, status, ip_address, user_agent)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id::text, submitted_at
    `,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		string(submission.InquiryType),
		submission.SubmittedAt,
		string(submission.Status),
		submission.IPAddress,
		submission.UserAgent,
	)

	if err := row.Scan(&submission.ID, &submission.SubmittedAt); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// List returns every submission, newest first.
func (r *PGXContactSubmissionsRepository) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contactColumns+` FROM contact_submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]entity.ContactSubmission, 0)
	for rows.Next() {
		submission, err := scanContactSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}
	return submissions, nil
}

// UpdateStatus sets the status and reports whether a row actually changed.
func (r *PGXContactSubmissionsRepository) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE contact_submissions SET status = $2 WHERE id = $1 AND status <> $2`, id, string(status))
	if err != nil {
		return false, fmt.Errorf("update contact submission status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanContactSubmission(row pgx.Row) (entity.ContactSubmission, error) {
	var (
		s           entity.ContactSubmission
		inquiryType string
		status      string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &inquiryType, &s.SubmittedAt, &status, &s.IPAddress, &s.UserAgent); err != nil {
		return entity.ContactSubmission{}, err
	}
	s.InquiryType = entity.InquiryType(inquiryType)
	s.Status = entity.SubmissionStatus(status)
	return s, nil
}
