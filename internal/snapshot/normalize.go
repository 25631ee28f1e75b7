// Structural normalization pass: a total function from a loosely-typed
// payload to the fully-typed current snapshot. Runs after every migration
// chain regardless of the version that was resolved, and is idempotent on
// its own output.
// Implements: prd002-migration-engine R3, R5, R6.
package snapshot

import (
	"time"

	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// normalize coerces every expected field to its target type, maps legacy
// enumeration values, and stamps the current schema version. Missing or
// malformed fields default; nothing throws.
func normalize(m map[string]any) *types.Snapshot {
	s := &types.Snapshot{
		Meta: types.Meta{
			Version: types.SchemaVersion,
			SavedAt: text.String(asMap(m["meta"])["savedAt"]),
		},
		Pre:     normalizePre(asMap(m["pre"])),
		Impact:  normalizeImpact(asMap(m["impact"])),
		Ops:     normalizeOps(asMap(m["ops"])),
		Table:   normalizeTable(asSlice(m["table"])),
		Causes:  normalizeCauses(asSlice(m["causes"])),
		Steps:   normalizeSteps(asMap(m["steps"])),
		Actions: normalizeActions(asMap(m["actions"])),
	}

	// The Likely-Cause reference must point at an existing cause that is
	// not marked does_not_explain; anything else is cleared.
	likely := text.String(m["likelyCauseId"])
	s.LikelyCauseID = ""
	for i := range s.Causes {
		if s.Causes[i].ID == likely && s.Causes[i].Decision != types.DecisionDoesNotExplain {
			s.LikelyCauseID = likely
			break
		}
	}

	return s
}

func normalizePre(m map[string]any) types.Pre {
	return types.Pre{
		Title:     text.String(m["title"]),
		Statement: text.String(m["statement"]),
		Owner:     text.String(m["owner"]),
		OpenedAt:  text.String(m["openedAt"]),
	}
}

func normalizeImpact(m map[string]any) types.Impact {
	return types.Impact{
		Severity:  text.String(m["severity"]),
		Affected:  text.String(m["affected"]),
		Business:  text.String(m["business"]),
		SLABreach: text.Bool(m["slaBreach"]),
	}
}

func normalizeOps(m map[string]any) types.Ops {
	ops := types.Ops{
		ContainStatus: normalizeContainStatus(text.String(m["containStatus"])),
		CommCadence:   text.String(m["commCadence"]),
		CommChannel:   text.String(m["commChannel"]),
		NextUpdateAt:  text.String(m["nextUpdateAt"]),
		LogOpen:       text.Bool(m["logOpen"]),
		Log:           []types.CommNote{},
	}
	for _, raw := range asSlice(m["log"]) {
		note := asMap(raw)
		if note == nil {
			continue
		}
		ops.Log = append(ops.Log, types.CommNote{
			At:   text.String(note["at"]),
			Text: text.String(note["text"]),
		})
	}
	return ops
}

// normalizeContainStatus accepts current values as-is, maps legacy
// three-value spellings, and collapses anything unrecognized to "".
func normalizeContainStatus(v string) string {
	if types.ValidContainStatuses[v] {
		return v
	}
	if mapped, ok := legacyContainMap[v]; ok {
		return mapped
	}
	return ""
}

func normalizeTable(rows []any) []types.EvidenceRow {
	table := []types.EvidenceRow{}
	for _, raw := range rows {
		row := asMap(raw)
		if row == nil {
			continue
		}
		table = append(table, types.EvidenceRow{
			Question: text.String(row["question"]),
			Is:       text.String(row["is"]),
			IsNot:    text.String(row["isNot"]),
		})
	}
	return table
}

func normalizeSteps(m map[string]any) types.Steps {
	steps := types.Steps{
		Items:      []types.StepItem{},
		DrawerOpen: text.Bool(m["drawerOpen"]),
	}
	for _, raw := range asSlice(m["items"]) {
		item := asMap(raw)
		if item == nil {
			continue
		}
		steps.Items = append(steps.Items, types.StepItem{
			Text: text.String(item["text"]),
			Done: text.Bool(item["done"]),
		})
	}
	return steps
}

func normalizeActions(m map[string]any) types.ActionsState {
	state := types.ActionsState{
		AnalysisID: text.String(m["analysisId"]),
		Items:      []types.Action{},
	}
	for _, raw := range asSlice(m["items"]) {
		item := asMap(raw)
		if item == nil {
			continue
		}
		state.Items = append(state.Items, types.Action{
			ActionID:   text.String(item["action_id"]),
			AnalysisID: text.String(item["analysis_id"]),
			Summary:    text.String(item["summary"]),
			Detail:     text.String(item["detail"]),
			Owner:      text.String(item["owner"]),
			DueAt:      parseTimePtr(item["due_at"]),
			Links:      types.ActionLinks{HypothesisID: text.String(asMap(item["links"])["hypothesisId"])},
			State:      text.String(item["state"]),
			CreatedAt:  parseTime(item["created_at"]),
		})
	}
	return state
}

// parseTime parses an RFC 3339 timestamp, returning the zero time when the
// value is absent or unparsable.
func parseTime(v any) time.Time {
	t, _ := time.Parse(time.RFC3339, text.String(v))
	return t
}

// parseTimePtr is parseTime for nullable timestamps.
func parseTimePtr(v any) *time.Time {
	s := text.String(v)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
