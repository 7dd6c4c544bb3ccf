package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ResumeStatus
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusFailed, true},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusFailed, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusFailed, false},
		{StatusCompleted, StatusProcessing, false},
		{StatusFailed, StatusCompleted, false},
		{StatusFailed, StatusPending, false},
		{StatusPending, StatusPending, false},
		{ResumeStatus("BOGUS"), StatusProcessing, false},
		{StatusPending, ResumeStatus("BOGUS"), false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, c.from.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("PROCESSING")
	assert.True(t, ok)
	assert.Equal(t, StatusProcessing, st)

	_, ok = ParseStatus("processing")
	assert.False(t, ok, "status strings are case sensitive")

	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestFieldKinds(t *testing.T) {
	assert.Len(t, FieldKinds, 6)
	assert.NotContains(t, FieldKinds, FieldDocument)
	assert.Contains(t, FieldKindStrings(), string(FieldDocument))
}
