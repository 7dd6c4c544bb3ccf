package llm

import (
	"strings"
	"unicode/utf8"

	"github.com/hirewise/resume-ingest/constants"
)

// maxPromptText caps how much resume text rides along with each prompt.
// Resumes are short documents; anything past this is boilerplate.
const maxPromptText = 6000

var kindInstructions = map[constants.FieldKind]string{
	constants.FieldContact: "Extract the candidate's contact details: full name, email address, " +
		"phone numbers (digits with optional country code), LinkedIn profile URL, and any other personal URLs. " +
		"Use null for anything not present.",
	constants.FieldSummary: "Extract the candidate's professional headline (their title in a few words) " +
		"and the summary/objective paragraph if one exists. Use null when the resume has neither.",
	constants.FieldExperience: "Extract every work experience entry: company, job title, location, " +
		"start date, end date (or \"Present\"), and a one-to-three sentence description of the role. " +
		"Keep the resume's own date wording. Return an empty array if none.",
	constants.FieldEducation: "Extract every education entry: institution, degree, field of study, " +
		"start year, end year. Return an empty array if none.",
	constants.FieldSkills: "Extract the candidate's skills grouped as technical (with a category per group, " +
		"e.g. Programming Languages, Frameworks, Databases, Cloud/DevOps, Tools), soft skills, " +
		"and spoken languages with proficiency. Only list skills the resume actually mentions.",
	constants.FieldCertifications: "Extract professional certifications: name, issuing organization, year. " +
		"Licenses and completed professional courses count; degrees do not. Return an empty array if none.",
}

// BuildPrompt renders the single-message prompt for one field kind, in the
// shape the extractors have always used: instruction, output schema, resume
// text, and a JSON-only closing directive.
func BuildPrompt(kind constants.FieldKind, text string) string {
	if len(text) > maxPromptText {
		// back off to a rune boundary so the cut never splits a multi-byte
		// character and leaves invalid UTF-8 in the prompt
		cut := maxPromptText
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	schema, _ := SchemaSource(kind)

	var b strings.Builder
	b.WriteString(kindInstructions[kind])
	b.WriteString("\n\nThe result must validate against this JSON Schema:\n")
	b.WriteString(schema)
	b.WriteString("\n\nResume text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn ONLY valid JSON, no additional text.")
	return b.String()
}
