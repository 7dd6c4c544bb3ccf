package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/internal/common"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// writeError maps application errors to HTTP statuses. Anything unmapped is
// an internal error and its details stay out of the response body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		s.writeJSON(w, http.StatusBadRequest, errorBody(err))
	case errors.Is(err, common.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody(err))
	case errors.Is(err, common.ErrStatusRegression):
		s.writeJSON(w, http.StatusConflict, errorBody(err))
	default:
		s.logger.Error("request failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

// idParam parses the {id} path segment as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.ValidationError("invalid id %q", raw)
	}
	return id, nil
}
