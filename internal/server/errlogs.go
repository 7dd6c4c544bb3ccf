package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/entity"
	"github.com/hirewise/resume-ingest/internal/repository"
)

func (s *Server) handleListErrorLogs(w http.ResponseWriter, r *http.Request) {
	f := repository.ErrorFilter{Limit: 50}
	q := r.URL.Query()

	if raw := q.Get("severity"); raw != "" {
		sev := constants.Severity(raw)
		if sev != constants.SeverityError && sev != constants.SeverityWarning {
			s.writeError(w, common.ValidationError("unknown severity %q", raw))
			return
		}
		f.Severity = &sev
	}
	if raw := q.Get("resolved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, common.ValidationError("resolved must be a boolean"))
			return
		}
		f.Resolved = &v
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, common.ValidationError("limit must be a positive integer"))
			return
		}
		f.Limit = n
	}

	rows, err := s.ledger.List(r.Context(), f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"error_logs": toErrorEntities(rows),
		"count":      len(rows),
	})
}

func (s *Server) handleErrorLogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ledger.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleResumeErrorLogs(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// surface NotFound for unknown records rather than an empty list
	if _, err := s.resumes.GetByID(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	rows, err := s.ledger.ListForResume(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"resume_id":  id.String(),
		"error_logs": toErrorEntities(rows),
		"count":      len(rows),
	})
}

func (s *Server) handleResolveErrorLog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	row, err := s.ledger.MarkResolved(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":     "error log marked as resolved",
		"id":          row.ID.String(),
		"resolved_at": row.ResolvedAt,
	})
}

func (s *Server) handleCleanupErrorLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	daysOld := 30
	if raw := q.Get("days_old"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, common.ValidationError("days_old must be a positive integer"))
			return
		}
		daysOld = n
	}
	resolvedOnly := true
	if raw := q.Get("resolved_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, common.ValidationError("resolved_only must be a boolean"))
			return
		}
		resolvedOnly = v
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -daysOld)
	n, err := s.ledger.Cleanup(r.Context(), cutoff, resolvedOnly)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":       "old error logs deleted",
		"deleted_count": n,
		"days_old":      daysOld,
		"resolved_only": resolvedOnly,
	})
}

func toErrorEntities(rows []*ent.ExtractionError) []*entity.ExtractionError {
	out := make([]*entity.ExtractionError, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.ExtractionErrorFromEnt(row))
	}
	return out
}
