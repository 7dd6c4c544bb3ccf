package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/entity"
	"github.com/hirewise/resume-ingest/internal/ingest"
)

type uploadResponse struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	FileName   string `json:"filename"`
	Status     string `json:"status"`
	Duplicated bool   `json:"duplicated"`
	UploadedAt string `json:"uploaded_at"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// one extra MiB of headroom for the multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody+(1<<20))
	if err := r.ParseMultipartForm(s.maxBody); err != nil {
		s.writeError(w, common.ValidationError("parse upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, common.ValidationError("missing file field"))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, common.ValidationError("read upload: %v", err))
		return
	}

	res, err := s.ingestor.Submit(r.Context(), ingest.SubmitInput{
		FileName:  header.Filename,
		MediaKind: filepath.Ext(header.Filename),
		Data:      data,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	msg := fmt.Sprintf("Resume %q uploaded. Processing in background.", header.Filename)
	code := http.StatusAccepted
	if res.Duplicated {
		msg = fmt.Sprintf("Resume %q already exists. Returning existing record.", header.Filename)
		code = http.StatusOK
	}
	s.writeJSON(w, code, uploadResponse{
		ID:         res.Resume.ID.String(),
		Message:    msg,
		FileName:   res.Resume.FileName,
		Status:     res.Resume.Status,
		Duplicated: res.Duplicated,
		UploadedAt: res.Resume.UploadedAt.UTC().Format(timeFormat),
	})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	var status *constants.ResumeStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, ok := constants.ParseStatus(raw)
		if !ok {
			s.writeError(w, common.ValidationError("unknown status %q", raw))
			return
		}
		status = &st
	}

	rows, err := s.resumes.List(r.Context(), status)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]*entity.Resume, 0, len(rows))
	for _, row := range rows {
		e := entity.ResumeFromEnt(row)
		e.RawText = nil // list views stay light
		out = append(out, e)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"resumes": out, "count": len(out)})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	row, err := s.resumes.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entity.ResumeFromEnt(row))
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	row, err := s.resumes.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := map[string]any{
		"id":     row.ID.String(),
		"status": row.Status,
	}
	if row.ProcessedAt != nil {
		resp["processed_at"] = row.ProcessedAt.UTC().Format(timeFormat)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleGetResult returns the structured result as it currently stands, even
// mid-fill. Callers needing a completeness guarantee poll status first.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	row, err := s.ingestor.GetResult(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data := row.StructuredData
	if data == nil {
		data = map[string]json.RawMessage{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":              row.ID.String(),
		"status":          row.Status,
		"structured_data": data,
	})
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var body struct {
		StructuredData map[string]json.RawMessage `json:"structured_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, common.ValidationError("decode body: %v", err))
		return
	}
	if body.StructuredData == nil {
		s.writeError(w, common.ValidationError("structured_data is required"))
		return
	}

	row, err := s.resumes.ReplaceStructuredData(r.Context(), id, body.StructuredData)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "resume updated",
		"id":      row.ID.String(),
	})
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.ingestor.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "resume deleted",
		"id":      id.String(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var status *constants.ResumeStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, ok := constants.ParseStatus(raw)
		if !ok {
			s.writeError(w, common.ValidationError("unknown status %q", raw))
			return
		}
		status = &st
	}

	data, err := s.exporter.ExportResumesXLSX(r.Context(), status)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="resumes.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
