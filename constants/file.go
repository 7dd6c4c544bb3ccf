package constants

import "strings"

// Severity classifies ledger entries.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Severities holds the allowed severity strings.
var Severities = []string{string(SeverityError), string(SeverityWarning)}

// AllowedExtensions holds the default allowed file extensions for resume uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedExt reports whether a normalized extension is in the upload allow-list.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}
