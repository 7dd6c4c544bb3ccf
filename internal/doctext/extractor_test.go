package doctext

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func newExtractor(r Runner) *ToolExtractor {
	e := New(Config{}, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	if r != nil {
		e = e.WithRunner(r)
	}
	return e
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	e := newExtractor(nil)

	text, err := e.ExtractText(context.Background(), []byte("John Smith\nEngineer"), "txt")
	require.NoError(t, err)
	assert.Equal(t, "John Smith\nEngineer", text)
}

func TestExtractTextPlainRejectsBinary(t *testing.T) {
	e := newExtractor(nil)

	_, err := e.ExtractText(context.Background(), []byte{0xff, 0xfe, 0x00, 0x01}, "txt")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	e := newExtractor(nil)

	_, err := e.ExtractText(context.Background(), []byte("content"), "rtf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextEmptyResult(t *testing.T) {
	r := &stubRunner{stdout: []byte("   \n\t ")}
	e := newExtractor(r)

	_, err := e.ExtractText(context.Background(), []byte("%PDF"), "pdf")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractTextPDFViaRunner(t *testing.T) {
	r := &stubRunner{stdout: []byte("Jane Doe\nBackend Developer\n")}
	e := newExtractor(r)

	text, err := e.ExtractText(context.Background(), []byte("%PDF-1.7"), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nBackend Developer\n", text)
	assert.Equal(t, "pdftotext", r.gotName)
	assert.Contains(t, r.gotArgs, "-layout")
	assert.Equal(t, "-", r.gotArgs[len(r.gotArgs)-1], "output goes to stdout")
}

func TestExtractTextPDFToolFailure(t *testing.T) {
	r := &stubRunner{stderr: []byte("Syntax Error: couldn't read xref table\nmore detail"), err: errors.New("exit status 1")}
	e := newExtractor(r)

	_, err := e.ExtractText(context.Background(), []byte("not a pdf"), "pdf")
	require.ErrorIs(t, err, ErrCorruptDocument)
	assert.Contains(t, err.Error(), "couldn't read xref table")
	assert.NotContains(t, err.Error(), "more detail", "only the first stderr line is surfaced")
}

func TestExtractTextDocViaRunner(t *testing.T) {
	r := &stubRunner{stdout: []byte("legacy doc text")}
	e := newExtractor(r)

	text, err := e.ExtractText(context.Background(), []byte{0xd0, 0xcf}, "doc")
	require.NoError(t, err)
	assert.Equal(t, "legacy doc text", text)
	assert.Equal(t, "antiword", r.gotName)
}

func TestExtractTextDocx(t *testing.T) {
	const docXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go, SQL</w:t></w:r></w:p>
    <w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>
  </w:body>
</w:document>`
	e := newExtractor(nil)

	text, err := e.ExtractText(context.Background(), buildDocx(t, docXML), "docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Skills:\tGo, SQL\n")
	assert.Contains(t, text, "line one\nline two")
}

func TestExtractTextDocxNotAZip(t *testing.T) {
	e := newExtractor(nil)

	_, err := e.ExtractText(context.Background(), []byte("plainly not a zip"), "docx")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractTextDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	e := newExtractor(nil)
	_, err = e.ExtractText(context.Background(), buf.Bytes(), "docx")
	require.ErrorIs(t, err, ErrCorruptDocument)
	assert.Contains(t, err.Error(), "word/document.xml")
}
