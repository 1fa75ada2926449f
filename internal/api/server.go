package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/baxromumarov/job-board/internal/core"
	"github.com/baxromumarov/job-board/internal/observability"
	"github.com/baxromumarov/job-board/internal/store"
)

// Repository is the persistence surface the handlers need. *store.Store
// satisfies it.
type Repository interface {
	Ping(ctx context.Context) error

	ListOffers(ctx context.Context) ([]core.JobOffer, error)
	ListOffersByEmployerEmail(ctx context.Context, email string) ([]core.JobOffer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (core.JobOffer, error)
	CreateOffer(ctx context.Context, o core.JobOffer) (core.JobOffer, error)
	UpdateOffer(ctx context.Context, o core.JobOffer) (core.JobOffer, error)
	DeleteOffer(ctx context.Context, id uuid.UUID) error

	ListCandidates(ctx context.Context, limit, offset int) ([]store.Candidate, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (store.Candidate, error)
	CreateCandidate(ctx context.Context, c store.Candidate) (store.Candidate, error)
	UpdateCandidate(ctx context.Context, c store.Candidate) (store.Candidate, error)
	DeleteCandidate(ctx context.Context, id uuid.UUID) error

	ListEmployers(ctx context.Context, limit, offset int) ([]store.Employer, error)
	GetEmployer(ctx context.Context, id uuid.UUID) (store.Employer, error)
	CreateEmployer(ctx context.Context, e store.Employer) (store.Employer, error)
	UpdateEmployer(ctx context.Context, e store.Employer) (store.Employer, error)
	DeleteEmployer(ctx context.Context, id uuid.UUID) error
}

type Server struct {
	router     *chi.Mux
	store      Repository
	tokens     tokenSet
	normalizer core.Normalizer
	logger     *slog.Logger
}

func NewServer(repo Repository, tokens []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router:     chi.NewRouter(),
		store:      repo,
		tokens:     newTokenSet(tokens),
		normalizer: core.NewSimpleNormalizer(),
		logger:     logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
	}))
	s.router.Use(countRequests)

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/stats", s.handleStats)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.requireBearer)

		r.Route("/offreEmploi", func(r chi.Router) {
			r.Get("/", s.handleListOffers)
			r.Post("/", s.handleCreateOffer)
			r.Get("/{id}", s.handleGetOffer)
			r.Patch("/{id}", s.handleUpdateOffer)
			r.Delete("/{id}", s.handleDeleteOffer)
		})

		r.Route("/candidat", func(r chi.Router) {
			r.Get("/", s.handleListCandidates)
			r.Post("/", s.handleCreateCandidate)
			r.Get("/{id}", s.handleGetCandidate)
			r.Patch("/{id}", s.handleUpdateCandidate)
			r.Delete("/{id}", s.handleDeleteCandidate)
		})

		r.Route("/entreprise", func(r chi.Router) {
			r.Get("/", s.handleListEmployers)
			r.Post("/", s.handleCreateEmployer)
			r.Get("/{id}", s.handleGetEmployer)
			r.Patch("/{id}", s.handleUpdateEmployer)
			r.Delete("/{id}", s.handleDeleteEmployer)
			r.Get("/{id}/offres", s.handleListEmployerOffers)
		})
	})
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "job board API is running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, observability.Snapshot())
}

// countRequests records each request under its matched route pattern.
func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		pattern := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			pattern = r.Method + " " + rctx.RoutePattern()
		}
		observability.IncRequest(pattern)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func parseID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func parsePagination(r *http.Request, defaultLimit int) (int, int) {
	q := r.URL.Query()
	limit := defaultLimit
	offset := 0

	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
