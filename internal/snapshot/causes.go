// Cause (de)serialization and normalization. Causes ride inside the
// snapshot but also round-trip on their own for export; both paths go
// through the same tolerant normalizer.
// Implements: prd002-migration-engine R5.2; prd003-cause-decisions R1.
package snapshot

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// normalizeCauses coerces each element of a raw causes array. Non-object
// elements are dropped; blank IDs get a generated UUID v7.
func normalizeCauses(raw []any) []types.Cause {
	causes := []types.Cause{}
	for _, entry := range raw {
		m := asMap(entry)
		if m == nil {
			continue
		}
		causes = append(causes, normalizeCause(m))
	}
	return causes
}

// normalizeCause is the per-cause total normalizer.
func normalizeCause(m map[string]any) types.Cause {
	c := types.Cause{
		ID:               text.Clean(text.String(m["id"])),
		Suspect:          text.String(m["suspect"]),
		Accusation:       text.String(m["accusation"]),
		Impact:           text.String(m["impact"]),
		SummaryText:      text.String(m["summaryText"]),
		Decision:         text.String(m["decision"]),
		ExplanationIs:    text.String(m["explanation_is"]),
		ExplanationIsNot: text.String(m["explanation_is_not"]),
		Assumptions:      text.String(m["assumptions"]),
		Editing:          text.Bool(m["editing"]),
		TestingOpen:      text.Bool(m["testingOpen"]),
	}

	if c.ID == "" {
		c.ID = NewCauseID()
	}
	if !types.ValidDecision(c.Decision) {
		c.Decision = types.DecisionNone
	}

	// next_test is always an object with string fields, never null.
	switch t := m["next_test"].(type) {
	case map[string]any:
		c.NextTest = types.NextTest{
			Text:  text.String(t["text"]),
			Owner: text.String(t["owner"]),
			ETA:   text.String(t["eta"]),
		}
	case string:
		c.NextTest = types.NextTest{Text: text.Clean(t)}
	}

	return c
}

// NewCauseID generates a UUID v7 cause identifier.
func NewCauseID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SerializeCauses encodes a cause array for export.
func SerializeCauses(causes []types.Cause) ([]byte, error) {
	return json.Marshal(causes)
}

// DeserializeCauses decodes a cause array, normalizing each entry. Returns
// an empty slice for unparsable input.
func DeserializeCauses(blob []byte) []types.Cause {
	var raw []any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return []types.Cause{}
	}
	return normalizeCauses(raw)
}
