package core

import (
	"time"

	"github.com/google/uuid"
)

// JobOffer is a job posting. JSON names match the board frontend contract.
type JobOffer struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"nom_poste"`
	CandidateName    string    `json:"nom_candidat"`
	Category         string    `json:"categorie"`
	Salary           string    `json:"salaire"`
	Location         string    `json:"emplacement"`
	Description      string    `json:"description,omitempty"`
	Responsibilities string    `json:"responsabilites"`
	Requirements     string    `json:"exigences"`
	EmployerEmail    string    `json:"email_employeur"`
	Visible          bool      `json:"visibility"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
