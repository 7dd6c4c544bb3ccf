// One-shot extraction tool: reads a resume file, runs text extraction and
// every field-kind LLM call, and prints the merged structured JSON to stdout.
// Useful for prompt and schema tuning without a database or server.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/doctext"
	"github.com/hirewise/resume-ingest/internal/llm/openai"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: extract <resume-file> [field-kind ...]")
		os.Exit(2)
	}
	path := os.Args[1]

	kinds := constants.FieldKinds
	if len(os.Args) > 2 {
		kinds = kinds[:0:0]
		for _, arg := range os.Args[2:] {
			kind := constants.FieldKind(strings.ToLower(arg))
			ok := false
			for _, known := range constants.FieldKinds {
				if kind == known {
					ok = true
					break
				}
			}
			if !ok {
				logger.Error("unknown field kind", "arg", arg, "known", constants.FieldKindStrings())
				os.Exit(2)
			}
			kinds = append(kinds, kind)
		}
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.AllowedExt(ext) {
		logger.Error("unsupported file type", "path", path, "ext", ext)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	textExtractor := doctext.New(doctext.Config{
		Pdftotext: cfg.DocText.Pdftotext,
		Antiword:  cfg.DocText.Antiword,
	}, logger)
	text, err := textExtractor.ExtractText(ctx, data, ext)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("text extracted", "chars", len(text))

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.FieldTimeout + 5*time.Second,
	}, logger)

	merged := map[string]json.RawMessage{}
	for _, kind := range kinds {
		callCtx, cancelCall := context.WithTimeout(ctx, cfg.LLM.FieldTimeout)
		start := time.Now()
		fragment, err := client.Extract(callCtx, text, kind)
		cancelCall()
		if err != nil {
			logger.Error("field extraction failed", "kind", kind, "error", err)
			continue
		}
		logger.Info("field extracted", "kind", kind, "elapsed_ms", time.Since(start).Milliseconds())
		merged[string(kind)] = fragment
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
