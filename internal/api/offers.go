package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/baxromumarov/job-board/internal/core"
	"github.com/baxromumarov/job-board/internal/observability"
	"github.com/baxromumarov/job-board/internal/store"
)

// OfferRequest is the body of create and partial update calls. Nil fields
// are left unchanged.
type OfferRequest struct {
	Title            *string `json:"nom_poste"`
	CandidateName    *string `json:"nom_candidat"`
	Category         *string `json:"categorie"`
	Salary           *string `json:"salaire"`
	Location         *string `json:"emplacement"`
	Description      *string `json:"description"`
	Responsibilities *string `json:"responsabilites"`
	Requirements     *string `json:"exigences"`
	EmployerEmail    *string `json:"email_employeur"`
	Visible          *bool   `json:"visibility"`
}

func (req OfferRequest) apply(o core.JobOffer) core.JobOffer {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&o.Title, req.Title)
	set(&o.CandidateName, req.CandidateName)
	set(&o.Category, req.Category)
	set(&o.Salary, req.Salary)
	set(&o.Location, req.Location)
	set(&o.Description, req.Description)
	set(&o.Responsibilities, req.Responsibilities)
	set(&o.Requirements, req.Requirements)
	set(&o.EmployerEmail, req.EmployerEmail)
	if req.Visible != nil {
		o.Visible = *req.Visible
	}
	return o
}

func validateOffer(o core.JobOffer) string {
	switch {
	case o.Title == "":
		return "nom_poste is required"
	case o.EmployerEmail == "":
		return "email_employeur is required"
	}
	return ""
}

// handleListOffers returns every offer. With q or location set the result
// goes through the same filter the board uses, so hidden offers drop out.
func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := s.store.ListOffers(r.Context())
	if err != nil {
		s.storeError(w, err, "offers", "Failed to fetch offers")
		return
	}

	q := r.URL.Query()
	if _, hasQ := q["q"]; hasQ || q.Get("location") != "" {
		offers = core.Filter(offers, q.Get("q"), q.Get("location"))
	}
	if offers == nil {
		offers = []core.JobOffer{}
	}

	observability.AddOffersListed(len(offers))
	respondJSON(w, http.StatusOK, offers)
}

func (s *Server) handleGetOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	offer, err := s.store.GetOffer(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "offers", "Failed to fetch offer")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

func (s *Server) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	var req OfferRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	offer := req.apply(core.JobOffer{Visible: true})
	if msg := validateOffer(offer); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	offer = core.NormalizeOffer(s.normalizer, offer)

	created, err := s.store.CreateOffer(r.Context(), offer)
	if err != nil {
		s.storeError(w, err, "offers", "Failed to create offer")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	var req OfferRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current, err := s.store.GetOffer(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "offers", "Failed to fetch offer")
		return
	}

	offer := req.apply(current)
	if msg := validateOffer(offer); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	offer = core.NormalizeOffer(s.normalizer, offer)

	updated, err := s.store.UpdateOffer(r.Context(), offer)
	if err != nil {
		s.storeError(w, err, "offers", "Failed to update offer")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	if err := s.store.DeleteOffer(r.Context(), id); err != nil {
		s.storeError(w, err, "offers", "Failed to delete offer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// storeError writes the response for a failed store call.
func (s *Server) storeError(w http.ResponseWriter, err error, component, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		observability.IncError(observability.ClassifyStoreError(err), component)
		s.logger.Error(message, "component", component, "error", err)
		respondError(w, http.StatusInternalServerError, message+": "+err.Error())
	}
}
