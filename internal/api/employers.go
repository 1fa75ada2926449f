package api

import (
	"net/http"
	"strings"

	"github.com/baxromumarov/job-board/internal/core"
	"github.com/baxromumarov/job-board/internal/store"
)

type EmployerRequest struct {
	Name    *string `json:"nom"`
	Email   *string `json:"email"`
	Sector  *string `json:"secteur"`
	Address *string `json:"adresse"`
	Website *string `json:"site_web"`
}

func (req EmployerRequest) apply(e store.Employer) store.Employer {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&e.Name, req.Name)
	set(&e.Email, req.Email)
	set(&e.Sector, req.Sector)
	set(&e.Address, req.Address)
	set(&e.Website, req.Website)
	return e
}

func validateEmployer(e store.Employer) string {
	switch {
	case e.Name == "":
		return "nom is required"
	case e.Email == "":
		return "email is required"
	}
	return ""
}

func (s *Server) handleListEmployers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 100)

	employers, err := s.store.ListEmployers(r.Context(), limit, offset)
	if err != nil {
		s.storeError(w, err, "employers", "Failed to fetch employers")
		return
	}
	if employers == nil {
		employers = []store.Employer{}
	}
	respondJSON(w, http.StatusOK, employers)
}

func (s *Server) handleGetEmployer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	e, err := s.store.GetEmployer(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "employers", "Failed to fetch employer")
		return
	}
	respondJSON(w, http.StatusOK, e)
}

// handleListEmployerOffers lists offers whose contact email is the employer's.
func (s *Server) handleListEmployerOffers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	e, err := s.store.GetEmployer(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "employers", "Failed to fetch employer")
		return
	}

	offers, err := s.store.ListOffersByEmployerEmail(r.Context(), e.Email)
	if err != nil {
		s.storeError(w, err, "offers", "Failed to fetch offers")
		return
	}
	if offers == nil {
		offers = []core.JobOffer{}
	}
	respondJSON(w, http.StatusOK, offers)
}

func (s *Server) handleCreateEmployer(w http.ResponseWriter, r *http.Request) {
	var req EmployerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	e := req.apply(store.Employer{})
	if msg := validateEmployer(e); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := s.store.CreateEmployer(r.Context(), e)
	if err != nil {
		s.storeError(w, err, "employers", "Failed to create employer")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateEmployer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	var req EmployerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := s.store.GetEmployer(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "employers", "Failed to fetch employer")
		return
	}

	e := req.apply(current)
	if msg := validateEmployer(e); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := s.store.UpdateEmployer(r.Context(), e)
	if err != nil {
		s.storeError(w, err, "employers", "Failed to update employer")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteEmployer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	if err := s.store.DeleteEmployer(r.Context(), id); err != nil {
		s.storeError(w, err, "employers", "Failed to delete employer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
