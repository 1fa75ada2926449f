package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Employer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nom"`
	Email     string    `json:"email"`
	Sector    string    `json:"secteur"`
	Address   string    `json:"adresse"`
	Website   string    `json:"site_web"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const employerColumns = `id, name, email, sector, address, website, created_at, updated_at`

func scanEmployer(row rowScanner) (Employer, error) {
	var e Employer
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Sector,
		&e.Address,
		&e.Website,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (s *Store) ListEmployers(ctx context.Context, limit, offset int) ([]Employer, error) {
	limit = clampLimit(limit, 100, 500)
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT `+employerColumns+`
FROM employers
ORDER BY name ASC, id ASC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employers []Employer
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		employers = append(employers, e)
	}
	return employers, rows.Err()
}

func (s *Store) GetEmployer(ctx context.Context, id uuid.UUID) (Employer, error) {
	e, err := scanEmployer(s.db.QueryRowContext(ctx, `SELECT `+employerColumns+` FROM employers WHERE id = $1`, id))
	if err != nil {
		return Employer{}, mapErr(err)
	}
	return e, nil
}

func (s *Store) CreateEmployer(ctx context.Context, e Employer) (Employer, error) {
	e.ID = uuid.New()
	created, err := scanEmployer(s.db.QueryRowContext(ctx, `
INSERT INTO employers (id, name, email, sector, address, website, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
RETURNING `+employerColumns,
		e.ID, e.Name, e.Email, e.Sector, e.Address, e.Website))
	if err != nil {
		return Employer{}, mapErr(err)
	}
	return created, nil
}

func (s *Store) UpdateEmployer(ctx context.Context, e Employer) (Employer, error) {
	updated, err := scanEmployer(s.db.QueryRowContext(ctx, `
UPDATE employers SET
    name = $2,
    email = $3,
    sector = $4,
    address = $5,
    website = $6,
    updated_at = NOW()
WHERE id = $1
RETURNING `+employerColumns,
		e.ID, e.Name, e.Email, e.Sector, e.Address, e.Website))
	if err != nil {
		return Employer{}, mapErr(err)
	}
	return updated, nil
}

func (s *Store) DeleteEmployer(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM employers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
