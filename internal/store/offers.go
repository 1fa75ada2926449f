package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/baxromumarov/job-board/internal/core"
)

const offerColumns = `id, title, candidate_name, category, salary, location, description,
    responsibilities, requirements, employer_email, visible, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (core.JobOffer, error) {
	var o core.JobOffer
	err := row.Scan(
		&o.ID,
		&o.Title,
		&o.CandidateName,
		&o.Category,
		&o.Salary,
		&o.Location,
		&o.Description,
		&o.Responsibilities,
		&o.Requirements,
		&o.EmployerEmail,
		&o.Visible,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func (s *Store) queryOffers(ctx context.Context, query string, args ...any) ([]core.JobOffer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []core.JobOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// ListOffers returns every offer, oldest first. Visibility is left to the caller.
func (s *Store) ListOffers(ctx context.Context) ([]core.JobOffer, error) {
	return s.queryOffers(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY created_at ASC, id ASC`)
}

func (s *Store) ListOffersByEmployerEmail(ctx context.Context, email string) ([]core.JobOffer, error) {
	return s.queryOffers(ctx, `
SELECT `+offerColumns+`
FROM offers
WHERE LOWER(employer_email) = LOWER($1)
ORDER BY created_at ASC, id ASC
`, email)
}

func (s *Store) GetOffer(ctx context.Context, id uuid.UUID) (core.JobOffer, error) {
	o, err := scanOffer(s.db.QueryRowContext(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if err != nil {
		return core.JobOffer{}, mapErr(err)
	}
	return o, nil
}

// CreateOffer assigns a fresh ID and returns the stored row.
func (s *Store) CreateOffer(ctx context.Context, o core.JobOffer) (core.JobOffer, error) {
	o.ID = uuid.New()
	created, err := scanOffer(s.db.QueryRowContext(ctx, `
INSERT INTO offers (id, title, candidate_name, category, salary, location, description,
    responsibilities, requirements, employer_email, visible, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
RETURNING `+offerColumns,
		o.ID, o.Title, o.CandidateName, o.Category, o.Salary, o.Location, o.Description,
		o.Responsibilities, o.Requirements, o.EmployerEmail, o.Visible))
	if err != nil {
		return core.JobOffer{}, mapErr(err)
	}
	return created, nil
}

func (s *Store) UpdateOffer(ctx context.Context, o core.JobOffer) (core.JobOffer, error) {
	updated, err := scanOffer(s.db.QueryRowContext(ctx, `
UPDATE offers SET
    title = $2,
    candidate_name = $3,
    category = $4,
    salary = $5,
    location = $6,
    description = $7,
    responsibilities = $8,
    requirements = $9,
    employer_email = $10,
    visible = $11,
    updated_at = NOW()
WHERE id = $1
RETURNING `+offerColumns,
		o.ID, o.Title, o.CandidateName, o.Category, o.Salary, o.Location, o.Description,
		o.Responsibilities, o.Requirements, o.EmployerEmail, o.Visible))
	if err != nil {
		return core.JobOffer{}, mapErr(err)
	}
	return updated, nil
}

func (s *Store) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
