package constants

// FieldKind identifies one of the independent extraction streams that run
// against a resume's raw text.
type FieldKind string

const (
	FieldContact        FieldKind = "contact"
	FieldSummary        FieldKind = "summary"
	FieldExperience     FieldKind = "experience"
	FieldEducation      FieldKind = "education"
	FieldSkills         FieldKind = "skills"
	FieldCertifications FieldKind = "certifications"

	// FieldDocument is the sentinel kind used for failures of the document
	// text-extraction step itself, before any field extraction ran.
	FieldDocument FieldKind = "document"
)

// FieldKinds lists the extraction streams dispatched per run, in no
// particular order. FieldDocument is deliberately excluded.
var FieldKinds = []FieldKind{
	FieldContact,
	FieldSummary,
	FieldExperience,
	FieldEducation,
	FieldSkills,
	FieldCertifications,
}

// FieldKindStrings returns the dispatchable kinds plus the document sentinel,
// for schema-level enum validation.
func FieldKindStrings() []string {
	out := make([]string, 0, len(FieldKinds)+1)
	for _, k := range FieldKinds {
		out = append(out, string(k))
	}
	return append(out, string(FieldDocument))
}
