// Package doctext converts uploaded resume bytes into plain text.
//
// PDF and legacy DOC go through external command-line tools behind a Runner
// so tests can stub them; DOCX and TXT are handled in-process.
package doctext

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnsupportedFormat means no extraction path exists for the media kind.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptDocument means the bytes did not parse as the claimed format.
	ErrCorruptDocument = errors.New("corrupt document")
)

// Extractor is the behavior the pipeline depends on.
type Extractor interface {
	// ExtractText converts raw upload bytes of the given media kind
	// (normalized extension: pdf, docx, doc, txt) into plain text.
	ExtractText(ctx context.Context, data []byte, mediaKind string) (string, error)
}

// Config holds the external tool locations.
type Config struct {
	Pdftotext string // default "pdftotext"
	Antiword  string // default "antiword"
}

// ToolExtractor implements Extractor with pdftotext/antiword plus native
// DOCX and TXT handling.
type ToolExtractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *ToolExtractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Antiword == "" {
		cfg.Antiword = "antiword"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ToolExtractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner. Tests use this to stub the external tools.
func (e *ToolExtractor) WithRunner(r Runner) *ToolExtractor {
	e.runner = r
	return e
}

func (e *ToolExtractor) ExtractText(ctx context.Context, data []byte, mediaKind string) (string, error) {
	var (
		text string
		err  error
	)
	switch mediaKind {
	case "pdf":
		text, err = e.pdfToText(ctx, data)
	case "docx":
		text, err = docxToText(data)
	case "doc":
		text, err = e.docToText(ctx, data)
	case "txt":
		text, err = plainText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaKind)
	}
	if err != nil {
		e.logger.Error("document text extraction failed", "media_kind", mediaKind, "bytes", len(data), "error", err)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no extractable text", ErrCorruptDocument)
	}
	e.logger.Debug("document text extracted", "media_kind", mediaKind, "bytes", len(data), "text_len", len(text))
	return text, nil
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrCorruptDocument)
	}
	return string(data), nil
}
