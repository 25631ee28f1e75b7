package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// remigrate round-trips a snapshot through JSON and the migration engine,
// the way a stored blob re-enters the system.
func remigrate(t *testing.T, s *types.Snapshot) *types.Snapshot {
	t.Helper()
	blob, err := Encode(s)
	require.NoError(t, err)
	out := Decode(blob)
	require.NotNil(t, out)
	return out
}

func TestMigrateRejectsNonObjects(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"string", "not a snapshot"},
		{"number", float64(7)},
		{"array", []any{"a", "b"}},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Migrate(tt.raw))
		})
	}
}

func TestMigrateVersionAlwaysCurrent(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"empty object", map[string]any{}},
		{"no meta", map[string]any{"pre": map[string]any{"title": "x"}}},
		{"string version", map[string]any{"meta": map[string]any{"version": "2"}}},
		{"garbage version", map[string]any{"meta": map[string]any{"version": "vNext"}}},
		{"negative version", map[string]any{"meta": map[string]any{"version": float64(-4)}}},
		{"future version", map[string]any{"meta": map[string]any{"version": float64(99)}}},
		{"current version", map[string]any{"meta": map[string]any{"version": float64(types.SchemaVersion)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Migrate(tt.raw)
			require.NotNil(t, s)
			assert.Equal(t, types.SchemaVersion, s.Meta.Version)
		})
	}
}

func TestMigrateIdempotent(t *testing.T) {
	payloads := []map[string]any{
		{},
		{
			"meta":              map[string]any{"version": float64(0), "savedAt": "2023-04-01T10:00:00Z"},
			"containmentStatus": "mitigation",
			"commCadence":       "hourly",
			"suspects": []any{
				map[string]any{"id": "c1", "suspect": "Pump 7", "accusation": "is leaking"},
			},
		},
		{
			"meta":      map[string]any{"version": float64(1)},
			"checklist": []any{"notify on-call", "check seals"},
			"impact":    map[string]any{"slaBreach": "yes"},
		},
	}

	for _, payload := range payloads {
		first := Migrate(payload)
		require.NotNil(t, first)
		second := remigrate(t, first)
		assert.Equal(t, first, second)
	}
}

func TestMigrateV0Scenario(t *testing.T) {
	raw := map[string]any{
		"containmentStatus": "mitigation",
		"commCadence":       "hourly",
		"suspects": []any{
			map[string]any{"id": "c1", "suspect": "Pump 7", "accusation": "is leaking"},
		},
	}

	s := Migrate(raw)
	require.NotNil(t, s)

	assert.Equal(t, types.SchemaVersion, s.Meta.Version)
	assert.Equal(t, "stabilized", s.Ops.ContainStatus)
	assert.Equal(t, "hourly", s.Ops.CommCadence)
	require.Len(t, s.Causes, 1)
	assert.Equal(t, "c1", s.Causes[0].ID)
	assert.Equal(t, "Pump 7", s.Causes[0].Suspect)
}

func TestMigrateV1Checklist(t *testing.T) {
	raw := map[string]any{
		"meta":      map[string]any{"version": float64(1)},
		"checklist": []any{"notify on-call", "  ", "check seals"},
	}

	s := Migrate(raw)
	require.NotNil(t, s)
	require.Len(t, s.Steps.Items, 2)
	assert.Equal(t, "notify on-call", s.Steps.Items[0].Text)
	assert.Equal(t, "check seals", s.Steps.Items[1].Text)
	assert.False(t, s.Steps.DrawerOpen)
}

func TestMigrateV2Findings(t *testing.T) {
	raw := map[string]any{
		"meta": map[string]any{"version": float64(2)},
		"causes": []any{
			map[string]any{
				"id":         "c1",
				"suspect":    "Pump 7",
				"accusation": "is leaking",
				"decision":   "maybe",
				"findings": map[string]any{
					"where": "only the east wing is affected",
					"what":  "",
				},
				"next_test": "pressure-test the seals",
			},
		},
	}

	s := Migrate(raw)
	require.NotNil(t, s)
	require.Len(t, s.Causes, 1)

	c := s.Causes[0]
	assert.Equal(t, types.DecisionConditional, c.Decision)
	// First non-empty finding (sorted by question key) seeds assumptions.
	assert.Equal(t, "only the east wing is affected", c.Assumptions)
	assert.Equal(t, "pressure-test the seals", c.NextTest.Text)
	assert.Empty(t, c.NextTest.Owner)
}

func TestMigrateV2KeepsExistingAssumptions(t *testing.T) {
	raw := map[string]any{
		"meta": map[string]any{"version": float64(2)},
		"causes": []any{
			map[string]any{
				"id":          "c1",
				"assumptions": "already recorded",
				"findings":    map[string]any{"where": "should be ignored"},
			},
		},
	}

	s := Migrate(raw)
	require.NotNil(t, s)
	assert.Equal(t, "already recorded", s.Causes[0].Assumptions)
}

func TestNormalizeContainStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"stabilized", "stabilized"}, // current value passes through
		{"monitoring", "monitoring"},
		{"none", "not_started"}, // legacy values remap
		{"mitigation", "stabilized"},
		{"resolved", "verified"},
		{"", ""},
		{"on fire", ""}, // unrecognized collapses to empty
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeContainStatus(tt.input))
		})
	}
}

func TestNormalizeCoercesFieldTypes(t *testing.T) {
	raw := map[string]any{
		"meta": map[string]any{"version": float64(types.SchemaVersion), "savedAt": "2024-01-01T00:00:00Z"},
		"pre":  map[string]any{"title": float64(42)},
		"impact": map[string]any{
			"severity":  float64(1),
			"slaBreach": "yes",
		},
		"ops": map[string]any{
			"logOpen": "1",
			"log": []any{
				map[string]any{"at": "2024-01-01T09:00:00Z", "text": "initial page"},
				"not an object",
			},
		},
		"table": []any{
			map[string]any{"question": "where", "is": "east wing", "isNot": "west wing"},
		},
		"likelyCauseId": "nope",
	}

	s := Migrate(raw)
	require.NotNil(t, s)

	assert.Equal(t, "2024-01-01T00:00:00Z", s.Meta.SavedAt)
	assert.Equal(t, "42", s.Pre.Title)
	assert.Equal(t, "1", s.Impact.Severity)
	assert.True(t, s.Impact.SLABreach)
	assert.True(t, s.Ops.LogOpen)
	require.Len(t, s.Ops.Log, 1)
	assert.Equal(t, "initial page", s.Ops.Log[0].Text)
	require.Len(t, s.Table, 1)
	assert.True(t, s.Table[0].Eligible())
	// A likely-cause reference pointing nowhere is cleared.
	assert.Empty(t, s.LikelyCauseID)
}

func TestNormalizeClearsFailedLikelyCause(t *testing.T) {
	raw := map[string]any{
		"meta":          map[string]any{"version": float64(types.SchemaVersion)},
		"likelyCauseId": "c1",
		"causes": []any{
			map[string]any{"id": "c1", "decision": "does_not_explain"},
			map[string]any{"id": "c2", "decision": "explains"},
		},
	}

	s := Migrate(raw)
	require.NotNil(t, s)
	assert.Empty(t, s.LikelyCauseID)

	raw["likelyCauseId"] = "c2"
	s = Migrate(raw)
	require.NotNil(t, s)
	assert.Equal(t, "c2", s.LikelyCauseID)
}

func TestDecodeGarbage(t *testing.T) {
	assert.Nil(t, Decode([]byte("{not json")))
	assert.Nil(t, Decode([]byte(`"a string"`)))
	assert.Nil(t, Decode([]byte("null")))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	s := Migrate(map[string]any{
		"pre":    map[string]any{"title": "Pump room flooding"},
		"causes": []any{map[string]any{"id": "c1", "suspect": "Pump 7", "accusation": "is leaking"}},
	})
	require.NotNil(t, s)

	blob, err := Encode(s)
	require.NoError(t, err)
	assert.True(t, json.Valid(blob))
	assert.Equal(t, s, Decode(blob))
}
