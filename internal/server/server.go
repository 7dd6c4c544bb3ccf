// Package server exposes the ingestion pipeline over REST/JSON.
//
// Validation and lookup failures surface synchronously here; background-run
// failures never do — those are observable only through status polling and
// the error-log endpoints.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hirewise/resume-ingest/internal/export"
	"github.com/hirewise/resume-ingest/internal/ingest"
	"github.com/hirewise/resume-ingest/internal/repository"
)

type Server struct {
	logger   *slog.Logger
	ingestor *ingest.Service
	resumes  repository.ResumeRepository
	ledger   repository.ExtractionErrorRepository
	exporter *export.Service
	maxBody  int64
}

func New(
	logger *slog.Logger,
	ingestor *ingest.Service,
	resumes repository.ResumeRepository,
	ledger repository.ExtractionErrorRepository,
	exporter *export.Service,
	maxBody int64,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxBody <= 0 {
		maxBody = 10 << 20
	}
	return &Server{
		logger:   logger,
		ingestor: ingestor,
		resumes:  resumes,
		ledger:   ledger,
		exporter: exporter,
		maxBody:  maxBody,
	}
}

// Router assembles the full route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/resumes", func(r chi.Router) {
			r.Post("/upload", s.handleUpload)
			r.Get("/", s.handleListResumes)
			r.Get("/export", s.handleExport)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetResume)
				r.Get("/status", s.handleGetStatus)
				r.Get("/result", s.handleGetResult)
				r.Put("/", s.handleUpdateResume)
				r.Delete("/", s.handleDeleteResume)
				r.Get("/error-logs", s.handleResumeErrorLogs)
			})
		})
		r.Route("/error-logs", func(r chi.Router) {
			r.Get("/", s.handleListErrorLogs)
			r.Get("/stats", s.handleErrorLogStats)
			r.Put("/{id}/resolve", s.handleResolveErrorLog)
			r.Delete("/cleanup", s.handleCleanupErrorLogs)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
