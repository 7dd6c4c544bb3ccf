package constants

// ResumeStatus is the canonical lifecycle status for rows in resumes.
type ResumeStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ResumeStatus = "PENDING"    // accepted, waiting for a worker
	StatusProcessing ResumeStatus = "PROCESSING" // background run in progress
	StatusCompleted  ResumeStatus = "COMPLETED"  // terminal: at least one field kind extracted
	StatusFailed     ResumeStatus = "FAILED"     // terminal: text extraction failed or every field kind failed
)

// statusRank orders the lifecycle. A status may only move to a higher rank.
var statusRank = map[ResumeStatus]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusCompleted:  2,
	StatusFailed:     2,
}

// Statuses holds every valid lifecycle status string.
var Statuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
}

// IsTerminal reports whether s is a final status.
func (s ResumeStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether moving from s to next keeps the lifecycle
// monotonic. Terminal statuses never transition again.
func (s ResumeStatus) CanTransition(next ResumeStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	return to > from
}

// ParseStatus validates a status string coming from the API layer.
func ParseStatus(s string) (ResumeStatus, bool) {
	st := ResumeStatus(s)
	_, ok := statusRank[st]
	return st, ok
}
