package llm

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hirewise/resume-ingest/constants"
)

// ErrMalformedResponse means the model answered but the payload did not
// parse, or did not validate against the field kind's schema.
var ErrMalformedResponse = errors.New("malformed extractor response")

// FieldExtractor is the interface the pipeline depends on. One call covers
// one field kind; the orchestrator fans out across kinds.
type FieldExtractor interface {
	// Extract returns the JSON fragment for one field kind of the resume
	// text. Timeouts surface as the context error; unparseable or
	// schema-invalid output unwraps to ErrMalformedResponse.
	Extract(ctx context.Context, text string, kind constants.FieldKind) (json.RawMessage, error)
}
