package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/llm"
)

var (
	fenceOpen  = "```json"
	fenceBare  = "```"
	fenceClose = "```"
)

// Extract implements llm.FieldExtractor over text-only chat/completions.
func (c *Client) Extract(ctx context.Context, text string, kind constants.FieldKind) (json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"field_kind", kind,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": llm.BuildPrompt(kind, text)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "field_kind", kind, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "field_kind", kind, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: decode response: %v", llm.ErrMalformedResponse, err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "field_kind", kind,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: no choices in response", llm.ErrMalformedResponse)
	}

	content := stripFences(cc.Choices[0].Message.Content)
	fragment := json.RawMessage(content)

	if err := llm.ValidateFragment(kind, fragment); err != nil {
		c.logger.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "field_kind", kind, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"field_kind", kind,
		"fragment_bytes", len(fragment),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fragment, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, fenceOpen) {
		s = strings.TrimPrefix(s, fenceOpen)
	} else if strings.HasPrefix(s, fenceBare) {
		s = strings.TrimPrefix(s, fenceBare)
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), fenceClose)
	return strings.TrimSpace(s)
}
