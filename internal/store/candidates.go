package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Candidate struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"nom"`
	FirstName string    `json:"prenom"`
	Email     string    `json:"email"`
	Phone     string    `json:"telephone"`
	Skills    []string  `json:"competences"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const candidateColumns = `id, last_name, first_name, email, phone, skills, created_at, updated_at`

func scanCandidate(row rowScanner) (Candidate, error) {
	var c Candidate
	err := row.Scan(
		&c.ID,
		&c.LastName,
		&c.FirstName,
		&c.Email,
		&c.Phone,
		pq.Array(&c.Skills),
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return c, err
}

func (s *Store) ListCandidates(ctx context.Context, limit, offset int) ([]Candidate, error) {
	limit = clampLimit(limit, 100, 500)
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT `+candidateColumns+`
FROM candidates
ORDER BY created_at ASC, id ASC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (s *Store) GetCandidate(ctx context.Context, id uuid.UUID) (Candidate, error) {
	c, err := scanCandidate(s.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		return Candidate{}, mapErr(err)
	}
	return c, nil
}

func (s *Store) CreateCandidate(ctx context.Context, c Candidate) (Candidate, error) {
	c.ID = uuid.New()
	if c.Skills == nil {
		c.Skills = []string{}
	}
	created, err := scanCandidate(s.db.QueryRowContext(ctx, `
INSERT INTO candidates (id, last_name, first_name, email, phone, skills, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
RETURNING `+candidateColumns,
		c.ID, c.LastName, c.FirstName, c.Email, c.Phone, pq.Array(c.Skills)))
	if err != nil {
		return Candidate{}, mapErr(err)
	}
	return created, nil
}

func (s *Store) UpdateCandidate(ctx context.Context, c Candidate) (Candidate, error) {
	if c.Skills == nil {
		c.Skills = []string{}
	}
	updated, err := scanCandidate(s.db.QueryRowContext(ctx, `
UPDATE candidates SET
    last_name = $2,
    first_name = $3,
    email = $4,
    phone = $5,
    skills = $6,
    updated_at = NOW()
WHERE id = $1
RETURNING `+candidateColumns,
		c.ID, c.LastName, c.FirstName, c.Email, c.Phone, pq.Array(c.Skills)))
	if err != nil {
		return Candidate{}, mapErr(err)
	}
	return updated, nil
}

func (s *Store) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
