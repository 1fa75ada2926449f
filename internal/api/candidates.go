package api

import (
	"net/http"
	"strings"

	"github.com/baxromumarov/job-board/internal/store"
)

type CandidateRequest struct {
	LastName  *string   `json:"nom"`
	FirstName *string   `json:"prenom"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"telephone"`
	Skills    *[]string `json:"competences"`
}

func (req CandidateRequest) apply(c store.Candidate) store.Candidate {
	if req.LastName != nil {
		c.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.FirstName != nil {
		c.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Skills != nil {
		skills := make([]string, 0, len(*req.Skills))
		for _, sk := range *req.Skills {
			if sk = strings.TrimSpace(sk); sk != "" {
				skills = append(skills, sk)
			}
		}
		c.Skills = skills
	}
	return c
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 100)

	candidates, err := s.store.ListCandidates(r.Context(), limit, offset)
	if err != nil {
		s.storeError(w, err, "candidates", "Failed to fetch candidates")
		return
	}
	if candidates == nil {
		candidates = []store.Candidate{}
	}
	respondJSON(w, http.StatusOK, candidates)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	c, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "candidates", "Failed to fetch candidate")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c := req.apply(store.Candidate{})
	if c.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	created, err := s.store.CreateCandidate(r.Context(), c)
	if err != nil {
		s.storeError(w, err, "candidates", "Failed to create candidate")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req CandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "candidates", "Failed to fetch candidate")
		return
	}

	c := req.apply(current)
	if c.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	updated, err := s.store.UpdateCandidate(r.Context(), c)
	if err != nil {
		s.storeError(w, err, "candidates", "Failed to update candidate")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	if err := s.store.DeleteCandidate(r.Context(), id); err != nil {
		s.storeError(w, err, "candidates", "Failed to delete candidate")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
