package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"trims ends", "  pump seven  ", "pump seven"},
		{"collapses runs", "pump \t\n  seven", "pump seven"},
		{"single word", "pump", "pump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips trailing period", "the pump is leaking.", "the pump is leaking"},
		{"strips stacked punctuation", "why?!", "why"},
		{"keeps internal punctuation", "pump 7, east wing", "pump 7, east wing"},
		{"trim plus strip", "  leaking...  ", "leaking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "lon"+Ellipsis, Truncate("longer", 3))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))
	// Rune-aware: no split inside a multibyte character.
	assert.Equal(t, "héll"+Ellipsis, Truncate("héllo!", 4))
}

func TestIsFiller(t *testing.T) {
	for _, filler := range []string{"n/a", "N/A", " tbd ", "unknown", "-", "--", "none"} {
		assert.True(t, IsFiller(filler), filler)
	}
	for _, real := range []string{"downtime", "n/a impact", "0"} {
		assert.False(t, IsFiller(real), real)
	}
}

func TestMeaningful(t *testing.T) {
	assert.False(t, Meaningful("", 3))
	assert.False(t, Meaningful("ok", 3))
	assert.False(t, Meaningful("tbd", 3))
	assert.True(t, Meaningful("downtime", 3))
}

func TestStartsWithCopula(t *testing.T) {
	assert.True(t, StartsWithCopula("is leaking"))
	assert.True(t, StartsWithCopula("  Are overloaded"))
	assert.True(t, StartsWithCopula("was misconfigured"))
	assert.False(t, StartsWithCopula("leaking"))
	assert.False(t, StartsWithCopula("islands of failure"))
}

func TestStartsWithGerund(t *testing.T) {
	assert.True(t, StartsWithGerund("leaking seal fluid"))
	assert.True(t, StartsWithGerund("Dropping packets"))
	assert.False(t, StartsWithGerund("ring failure"))
	assert.False(t, StartsWithGerund("king of spades"))
	assert.False(t, StartsWithGerund("fails to close"))
}

func TestHasVerb(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"fails under load", true},      // domain verb
		{"dropped connections", true},   // -ed ending
		{"leaking seal fluid", true},    // -ing ending
		{"starts to overheat", true},    // "to <verb>" phrase
		{"bad firmware", false},
		{"Downtime", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, HasVerb(tt.input))
		})
	}
}

func TestLooksPlural(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Pump 7", false},
		{"the pumps", true},
		{"pump A and pump B", true},
		{"ops & infra", true},
		{"the chassis", false},  // -is ending
		{"the press", false},    // -ss ending
		{"the bus", false},      // -us ending
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksPlural(tt.input))
		})
	}
}
