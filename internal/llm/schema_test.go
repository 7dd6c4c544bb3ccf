package llm

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
)

func TestValidateFragmentAccepts(t *testing.T) {
	cases := map[constants.FieldKind]string{
		constants.FieldContact: `{"full_name":"Jane Doe","email":"jane@example.com","phone":["+1 555 0100"],"linkedin":null,"urls":[]}`,
		constants.FieldSummary: `{"headline":"Backend Engineer","summary":null}`,
		constants.FieldExperience: `[{"company":"Acme","title":"Engineer","location":null,` +
			`"start_date":"Jan 2020","end_date":"Present","description":"Built services."}]`,
		constants.FieldEducation:      `[{"institution":"MIT","degree":"BSc","field_of_study":"CS","start_year":"2014","end_year":"2018"}]`,
		constants.FieldSkills:         `{"technical":[{"category":"Programming Languages","items":["Go","Python"]}],"soft":["mentoring"],"languages":[{"language":"English","proficiency":"native"}]}`,
		constants.FieldCertifications: `[{"name":"CKA","issuer":"CNCF","year":"2023"}]`,
	}
	for kind, payload := range cases {
		t.Run(string(kind), func(t *testing.T) {
			assert.NoError(t, ValidateFragment(kind, json.RawMessage(payload)))
		})
	}
}

func TestValidateFragmentRejects(t *testing.T) {
	cases := map[string]struct {
		kind    constants.FieldKind
		payload string
	}{
		"not json":            {constants.FieldContact, `here is your JSON: {`},
		"wrong shape":         {constants.FieldExperience, `{"company":"Acme"}`},
		"unknown property":    {constants.FieldSummary, `{"headline":"x","confidence":0.9}`},
		"missing required":    {constants.FieldCertifications, `[{"issuer":"CNCF"}]`},
		"wrong item type":     {constants.FieldEducation, `["MIT"]`},
		"phone not an array":  {constants.FieldContact, `{"phone":"555-0100"}`},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateFragment(c.kind, json.RawMessage(c.payload))
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestEveryDispatchableKindHasASchema(t *testing.T) {
	for _, kind := range constants.FieldKinds {
		src, ok := SchemaSource(kind)
		require.Truef(t, ok, "kind %s", kind)
		assert.NotEmpty(t, src)
	}
	// the document sentinel marks text-extraction failures; nothing is
	// extracted under it, so it has no schema
	_, ok := SchemaSource(constants.FieldDocument)
	assert.False(t, ok)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(constants.FieldSkills, "Go, Kubernetes, PostgreSQL")
	schema, _ := SchemaSource(constants.FieldSkills)

	assert.Contains(t, p, schema)
	assert.Contains(t, p, "Go, Kubernetes, PostgreSQL")
	assert.Contains(t, p, "Return ONLY valid JSON")
}

func TestBuildPromptTruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", maxPromptText*2)
	p := BuildPrompt(constants.FieldSummary, long)
	assert.Less(t, len(p), maxPromptText+2000, "resume text must be capped")
}

func TestBuildPromptTruncatesOnRuneBoundary(t *testing.T) {
	// one leading ASCII byte misaligns the 3-byte runes against the cap, so a
	// naive byte slice would cut mid-rune
	long := "a" + strings.Repeat("界", maxPromptText)
	p := BuildPrompt(constants.FieldSummary, long)
	assert.True(t, utf8.ValidString(p), "truncation must not split a multi-byte rune")
	assert.Less(t, len(p), maxPromptText+2000, "resume text must be capped")
}
