package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientdesk/backend/internal/entity"
)

func (r *Repository) CreateOnboardingSubmission(ctx context.Context, s entity.OnboardingSubmission) error {
	const q = `
	INSERT INTO onboarding_submissions (id, business_name, contact_email, answers, file_paths, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, q, s.ID, s.BusinessName, s.ContactEmail, s.Answers, s.FilePaths, s.CreatedAt)

	return mapErr(err)
}

func scanSubmission(row pgx.Row) (entity.OnboardingSubmission, error) {
	var s entity.OnboardingSubmission

	err := row.Scan(&s.ID, &s.BusinessName, &s.ContactEmail, &s.Answers, &s.FilePaths, &s.CreatedAt)
	if err != nil {
		return entity.OnboardingSubmission{}, mapErr(err)
	}

	return s, nil
}

func (r *Repository) OnboardingSubmission(ctx context.Context, id uuid.UUID) (entity.OnboardingSubmission, error) {
	const q = `SELECT id, business_name, contact_email, answers, file_paths, created_at
	FROM onboarding_submissions WHERE id = $1`

	return scanSubmission(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) OnboardingSubmissions(ctx context.Context) ([]entity.OnboardingSubmission, error) {
	const q = `SELECT id, business_name, contact_email, answers, file_paths, created_at
	FROM onboarding_submissions ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var subs []entity.OnboardingSubmission

	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}

		subs = append(subs, s)
	}

	return subs, rows.Err()
}
