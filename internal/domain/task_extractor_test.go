package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTaskID(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected string
		found    bool
	}{
		{"bracketed tag", "[ECO-1] fix", "ECO-1", true},
		{"bare tag", "ECO-2 fix", "ECO-2", true},
		{"hash number", "#77 fix", "77", true},
		{"bare tag mid subject", "fix the thing for ECOLOGY-2994 quickly", "ECOLOGY-2994", true},
		{"bracketed wins over bare", "ECO-5 follow-up to [ECO-4]", "ECO-4", true},
		{"tag wins over hash", "#12 relates to ECO-9", "ECO-9", true},
		{"bracketed wins over hash", "#12 [ECO-3] fix", "ECO-3", true},
		{"lowercase is not a tag", "eco-1 fix", "", false},
		{"hash without digits", "# fix", "", false},
		{"no identifiers", "refactor parser", "", false},
		{"empty subject", "", "", false},
		{"first bare tag wins", "ECO-1 and ECO-2", "ECO-1", true},
		{"letters required before hyphen", "-123 fix", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := ExtractTaskID(tt.subject)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestExtractTaskID_Deterministic(t *testing.T) {
	subjects := []string{"[ECO-1] fix", "ECO-2 fix", "#77 fix", "nothing here", "ünïcödé [AB-1]"}

	for _, subject := range subjects {
		firstID, firstFound := ExtractTaskID(subject)
		for i := 0; i < 5; i++ {
			id, found := ExtractTaskID(subject)
			assert.Equal(t, firstID, id, "subject %q", subject)
			assert.Equal(t, firstFound, found, "subject %q", subject)
		}
	}
}
