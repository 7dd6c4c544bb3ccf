package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/repository"
)

// Service is a tiny façade over the repositories that produces XLSX bytes
// for operator exports.
type Service struct {
	resumes repository.ResumeRepository
	ledger  repository.ExtractionErrorRepository
	logger  *slog.Logger
}

func NewService(resumes repository.ResumeRepository, ledger repository.ExtractionErrorRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resumes: resumes, ledger: ledger, logger: logger}
}

// ExportResumesXLSX returns an XLSX workbook (as bytes) listing ingestion
// records, optionally filtered by lifecycle status.
func (s *Service) ExportResumesXLSX(ctx context.Context, status *constants.ResumeStatus) ([]byte, error) {
	start := time.Now()

	rows, err := s.resumes.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Resumes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File Name",
		"Type",
		"Size (bytes)",
		"Status",
		"Uploaded At",
		"Processed At",
		"Extracted Sections",
		"Errors",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, r := range rows {
		processed := ""
		if r.ProcessedAt != nil {
			processed = r.ProcessedAt.UTC().Format(time.RFC3339)
		}
		errCount := 0
		if entries, err := s.ledger.ListForResume(ctx, r.ID); err == nil {
			errCount = len(entries)
		}

		values := []any{
			r.FileName,
			r.FileType,
			r.FileSize,
			r.Status,
			r.UploadedAt.UTC().Format(time.RFC3339),
			processed,
			sectionList(r.StructuredData),
			errCount,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	s.logger.Info("resumes exported",
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func sectionList[V any](data map[string]V) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
