package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/doctext"
	"github.com/hirewise/resume-ingest/internal/repository"
)

// bookkeepingContext detaches from the run context so terminal status and
// ledger writes still land after the worker's deadline has expired mid-run.
// Without this a timed-out run would wedge the record at PROCESSING with an
// empty ledger. The fresh timeout keeps the writes bounded.
func bookkeepingContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
}

// Processor executes one ingestion run end to end: text extraction, then the
// concurrent field-kind fan-out, then the terminal status transition. It runs
// off the request path; nothing it returns ever reaches an HTTP caller.
type Processor struct {
	logger  *slog.Logger
	docText doctext.Extractor
	orch    *Orchestrator
	resumes repository.ResumeRepository
	ledger  repository.ExtractionErrorRepository
}

func NewProcessor(
	logger *slog.Logger,
	docText doctext.Extractor,
	orch *Orchestrator,
	resumes repository.ResumeRepository,
	ledger repository.ExtractionErrorRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:  logger,
		docText: docText,
		orch:    orch,
		resumes: resumes,
		ledger:  ledger,
	}
}

// Process runs the pipeline for one resume id. The returned error is for the
// worker's log only; all run outcomes are persisted on the record and the
// ledger before returning.
func (p *Processor) Process(ctx context.Context, resumeID uuid.UUID) error {
	row, err := p.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return fmt.Errorf("load resume: %w", err)
	}
	if st, ok := constants.ParseStatus(row.Status); ok && st.IsTerminal() {
		// duplicate enqueue or operator replay; the record already settled
		p.logger.Warn("skipping settled resume", "resume_id", resumeID, "status", row.Status)
		return nil
	}

	if err := p.resumes.UpdateStatus(ctx, resumeID, constants.StatusProcessing); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	text, err := p.extractText(ctx, row.FilePath, row.FileType)
	if err != nil {
		// no text means no field-kind call is ever attempted
		p.logger.Error("document text extraction failed", "resume_id", resumeID, "error", err)
		bctx, cancel := bookkeepingContext(ctx)
		defer cancel()
		if _, lerr := p.ledger.Record(bctx, resumeID, constants.FieldDocument, err.Error(), constants.SeverityError); lerr != nil {
			p.logger.Error("ledger write failed", "resume_id", resumeID, "error", lerr)
		}
		if serr := p.resumes.UpdateStatus(bctx, resumeID, constants.StatusFailed); serr != nil {
			p.logger.Error("status update failed", "resume_id", resumeID, "error", serr)
		}
		return fmt.Errorf("extract text: %w", err)
	}

	if err := p.resumes.SetRawText(ctx, resumeID, text); err != nil {
		bctx, cancel := bookkeepingContext(ctx)
		defer cancel()
		if serr := p.resumes.UpdateStatus(bctx, resumeID, constants.StatusFailed); serr != nil {
			p.logger.Error("status update failed", "resume_id", resumeID, "error", serr)
		}
		return fmt.Errorf("persist raw text: %w", err)
	}

	summary := p.orch.Run(ctx, resumeID, text)

	final := constants.StatusCompleted
	if summary.Succeeded == 0 {
		final = constants.StatusFailed
	}
	bctx, cancel := bookkeepingContext(ctx)
	defer cancel()
	if err := p.resumes.UpdateStatus(bctx, resumeID, final); err != nil {
		return fmt.Errorf("finalize status: %w", err)
	}

	p.logger.Info("resume processed",
		"resume_id", resumeID,
		"status", final,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return nil
}

func (p *Processor) extractText(ctx context.Context, path, mediaKind string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return p.docText.ExtractText(ctx, data, mediaKind)
}
