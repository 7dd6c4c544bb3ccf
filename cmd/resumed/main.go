package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hirewise/resume-ingest/internal/async"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/doctext"
	"github.com/hirewise/resume-ingest/internal/export"
	"github.com/hirewise/resume-ingest/internal/ingest"
	"github.com/hirewise/resume-ingest/internal/llm/openai"
	"github.com/hirewise/resume-ingest/internal/pipeline"
	"github.com/hirewise/resume-ingest/internal/repository"
	"github.com/hirewise/resume-ingest/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db ready")

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Error("create upload dir", "dir", cfg.Upload.Dir, "error", err)
		os.Exit(1)
	}

	resumesRepo := repository.NewResumeRepository(entc, logger)
	ledgerRepo := repository.NewExtractionErrorRepository(entc, logger)

	textExtractor := doctext.New(doctext.Config{
		Pdftotext: cfg.DocText.Pdftotext,
		Antiword:  cfg.DocText.Antiword,
	}, logger)

	fieldExtractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.FieldTimeout + 5*time.Second,
	}, logger)

	orch := pipeline.NewOrchestrator(logger, fieldExtractor, resumesRepo, ledgerRepo, cfg.LLM.FieldTimeout)
	proc := pipeline.NewProcessor(logger, textExtractor, orch, resumesRepo, ledgerRepo)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Workers.Workers),
		async.WithQueueSize(cfg.Workers.QueueSize),
		async.WithProcessTimeout(cfg.Workers.ProcessTimeout),
	)

	ingestor := ingest.NewService(logger, resumesRepo, queue, cfg.Upload.Dir, cfg.Upload.MaxSize)
	exporter := export.NewService(resumesRepo, ledgerRepo, logger)

	srv := server.New(logger, ingestor, resumesRepo, ledgerRepo, exporter, cfg.Upload.MaxSize)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	// drain in-flight extraction jobs before closing the DB
	queue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
