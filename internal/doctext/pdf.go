package doctext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// pdfToText shells out to pdftotext. The tool only reads files, so the upload
// bytes are staged in a temp file for the duration of the call.
func (e *ToolExtractor) pdfToText(ctx context.Context, data []byte) (string, error) {
	path, cleanup, err := stageTemp(data, "*.pdf")
	if err != nil {
		return "", err
	}
	defer cleanup()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("%w: pdftotext: %s", ErrCorruptDocument, firstLine(errb))
	}
	return string(out), nil
}

// docToText shells out to antiword for legacy .doc files.
func (e *ToolExtractor) docToText(ctx context.Context, data []byte) (string, error) {
	path, cleanup, err := stageTemp(data, "*.doc")
	if err != nil {
		return "", err
	}
	defer cleanup()

	out, errb, err := e.runner.Run(ctx, e.cfg.Antiword, "-m", "UTF-8.txt", path)
	if err != nil {
		return "", fmt.Errorf("%w: antiword: %s", ErrCorruptDocument, firstLine(errb))
	}
	return string(out), nil
}

func stageTemp(data []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", "ri-doc-"+pattern)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return filepath.Clean(path), cleanup, nil
}

func firstLine(b []byte) string {
	for i, c := range b {
		if c == '\n' {
			return string(b[:i])
		}
	}
	return string(b)
}
