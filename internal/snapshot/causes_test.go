package snapshot

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

func TestNormalizeCauseGeneratesID(t *testing.T) {
	causes := normalizeCauses([]any{
		map[string]any{"suspect": "Pump 7"},
		map[string]any{"id": "  ", "suspect": "the deploy"},
		map[string]any{"id": "keep-me", "suspect": "DNS"},
	})
	require.Len(t, causes, 3)

	for _, c := range causes[:2] {
		_, err := uuid.Parse(c.ID)
		assert.NoError(t, err, "blank IDs get a generated UUID")
	}
	assert.Equal(t, "keep-me", causes[2].ID)
}

func TestNormalizeCauseDefaults(t *testing.T) {
	c := normalizeCause(map[string]any{
		"id":        "c1",
		"decision":  "probably?",
		"next_test": "pressure-test the seals",
		"editing":   "yes",
	})

	assert.Equal(t, types.DecisionNone, c.Decision, "unknown decision resets")
	assert.Equal(t, "pressure-test the seals", c.NextTest.Text)
	assert.False(t, c.NextTest.Empty())
	assert.True(t, c.Editing)
}

func TestNormalizeCausesDropsNonObjects(t *testing.T) {
	causes := normalizeCauses([]any{"junk", float64(3), nil, map[string]any{"id": "c1"}})
	require.Len(t, causes, 1)
	assert.Equal(t, "c1", causes[0].ID)
}

func TestCausesRoundTrip(t *testing.T) {
	original := []types.Cause{
		{
			ID:            "c1",
			Suspect:       "Pump 7",
			Accusation:    "is leaking",
			Decision:      types.DecisionConditional,
			ExplanationIs: "pressure drops track the leak",
			Assumptions:   "the gauge is accurate",
			NextTest:      types.NextTest{Text: "swap the gauge", Owner: "dana", ETA: "2024-05-01"},
		},
		{ID: "c2", Suspect: "the deploy", Decision: types.DecisionDoesNotExplain},
	}

	blob, err := SerializeCauses(original)
	require.NoError(t, err)

	decoded := DeserializeCauses(blob)
	assert.Equal(t, original, decoded)
}

func TestDeserializeCausesGarbage(t *testing.T) {
	assert.Empty(t, DeserializeCauses([]byte("{")))
	assert.Empty(t, DeserializeCauses([]byte(`{"not":"an array"}`)))
	assert.Empty(t, DeserializeCauses([]byte("[]")))
}
