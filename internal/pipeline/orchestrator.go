package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/llm"
	"github.com/hirewise/resume-ingest/internal/repository"
)

// RunSummary reports how one ingestion run settled across field kinds.
type RunSummary struct {
	Succeeded int
	Failed    int
}

// Orchestrator fans one resume's raw text out to the field-kind extractors.
// The runs are fully independent: each branch gets its own timeout, merges
// its fragment the moment it lands, and writes its own ledger entry on
// failure. One slow or broken kind never delays or cancels a sibling.
type Orchestrator struct {
	logger       *slog.Logger
	extractor    llm.FieldExtractor
	resumes      repository.ResumeRepository
	ledger       repository.ExtractionErrorRepository
	fieldTimeout time.Duration
}

func NewOrchestrator(
	logger *slog.Logger,
	extractor llm.FieldExtractor,
	resumes repository.ResumeRepository,
	ledger repository.ExtractionErrorRepository,
	fieldTimeout time.Duration,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if fieldTimeout <= 0 {
		fieldTimeout = 25 * time.Second
	}
	return &Orchestrator{
		logger:       logger,
		extractor:    extractor,
		resumes:      resumes,
		ledger:       ledger,
		fieldTimeout: fieldTimeout,
	}
}

// Run dispatches all field kinds concurrently and blocks until every branch
// settles. Failures are recorded, never returned: the summary is the outcome.
func (o *Orchestrator) Run(ctx context.Context, resumeID uuid.UUID, text string) RunSummary {
	start := time.Now()
	o.logger.Info("orchestrator.run.start", "resume_id", resumeID, "field_kinds", len(constants.FieldKinds))

	var (
		mu      sync.Mutex
		summary RunSummary
	)
	var g errgroup.Group
	for _, kind := range constants.FieldKinds {
		g.Go(func() error {
			ok := o.runOne(ctx, resumeID, text, kind)
			mu.Lock()
			if ok {
				summary.Succeeded++
			} else {
				summary.Failed++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	o.logger.Info("orchestrator.run.done",
		"resume_id", resumeID,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary
}

func (o *Orchestrator) runOne(ctx context.Context, resumeID uuid.UUID, text string, kind constants.FieldKind) bool {
	cctx, cancel := context.WithTimeout(ctx, o.fieldTimeout)
	defer cancel()

	fragment, err := o.extractor.Extract(cctx, text, kind)
	if err != nil {
		o.logger.Warn("field extraction failed", "resume_id", resumeID, "field_kind", kind, "error", err)
		// ledger write detaches from the run ctx: both the per-call deadline
		// and the worker's deadline may already be spent
		bctx, bcancel := bookkeepingContext(ctx)
		defer bcancel()
		if _, lerr := o.ledger.Record(bctx, resumeID, kind, err.Error(), constants.SeverityError); lerr != nil {
			o.logger.Error("ledger write failed", "resume_id", resumeID, "field_kind", kind, "error", lerr)
		}
		return false
	}

	if err := o.resumes.MergeFragment(ctx, resumeID, kind, fragment); err != nil {
		o.logger.Error("fragment persist failed", "resume_id", resumeID, "field_kind", kind, "error", err)
		bctx, bcancel := bookkeepingContext(ctx)
		defer bcancel()
		if _, lerr := o.ledger.Record(bctx, resumeID, kind, "persist fragment: "+err.Error(), constants.SeverityError); lerr != nil {
			o.logger.Error("ledger write failed", "resume_id", resumeID, "field_kind", kind, "error", lerr)
		}
		return false
	}
	return true
}
