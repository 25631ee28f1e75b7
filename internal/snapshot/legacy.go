// Per-version migration transforms. Each lifts a payload one schema version;
// the engine stamps the new version number after the transform returns.
// Implements: prd002-migration-engine R4 (migration registry entries).
package snapshot

import (
	"sort"

	"github.com/mesh-intelligence/casefile/internal/text"
)

// legacyContainMap maps the original three-value containment scheme onto the
// current seven-value one. Values outside this map and outside the current
// scheme become the empty string; migration never invents incident state.
var legacyContainMap = map[string]string{
	"none":       "not_started",
	"mitigation": "stabilized",
	"resolved":   "verified",
}

// legacyDecisionMap maps the original verdict spellings to the current ones.
var legacyDecisionMap = map[string]string{
	"yes":   "explains",
	"maybe": "conditional",
	"no":    "does_not_explain",
}

// migrateV0toV1 moves the flat operational fields under ops, remaps the
// legacy containment status, and renames the causes array from its original
// "suspects" key.
func migrateV0toV1(m map[string]any) map[string]any {
	ops := asMap(m["ops"])
	if ops == nil {
		ops = make(map[string]any)
		m["ops"] = ops
	}

	if raw, ok := m["containmentStatus"]; ok {
		ops["containStatus"] = legacyContainMap[text.String(raw)]
		delete(m, "containmentStatus")
	}
	for _, key := range []string{"commCadence", "commChannel"} {
		if raw, ok := m[key]; ok {
			ops[key] = text.String(raw)
			delete(m, key)
		}
	}

	if suspects, ok := m["suspects"]; ok {
		if _, exists := m["causes"]; !exists {
			m["causes"] = suspects
		}
		delete(m, "suspects")
	}
	return m
}

// migrateV1toV2 converts the flat checklist string array into the steps
// object introduced with the steps drawer.
func migrateV1toV2(m map[string]any) map[string]any {
	checklist, ok := m["checklist"]
	if !ok {
		return m
	}
	delete(m, "checklist")
	if _, exists := m["steps"]; exists {
		return m
	}

	var items []any
	for _, entry := range asSlice(checklist) {
		label := text.Clean(text.String(entry))
		if label == "" {
			continue
		}
		items = append(items, map[string]any{"text": label, "done": false})
	}
	m["steps"] = map[string]any{"items": items, "drawerOpen": false}
	return m
}

// migrateV2toV3 collapses the superseded per-row findings model into the
// single-assumption decision model: the first non-empty finding seeds an
// empty assumptions field, legacy verdict spellings are renamed, and a
// string-valued next_test becomes the current object form.
func migrateV2toV3(m map[string]any) map[string]any {
	for _, raw := range asSlice(m["causes"]) {
		cause := asMap(raw)
		if cause == nil {
			continue
		}

		if findings := asMap(cause["findings"]); findings != nil {
			if text.Clean(text.String(cause["assumptions"])) == "" {
				if first := firstFinding(findings); first != "" {
					cause["assumptions"] = first
				}
			}
			delete(cause, "findings")
		}

		if mapped, ok := legacyDecisionMap[text.String(cause["decision"])]; ok {
			cause["decision"] = mapped
		}

		if s, ok := cause["next_test"].(string); ok {
			cause["next_test"] = map[string]any{
				"text":  text.Clean(s),
				"owner": "",
				"eta":   "",
			}
		}
	}
	return m
}

// firstFinding returns the first non-empty finding text, iterating question
// keys in sorted order so the result is deterministic.
func firstFinding(findings map[string]any) string {
	keys := make([]string, 0, len(findings))
	for k := range findings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := text.Clean(text.String(findings[k])); v != "" {
			return v
		}
	}
	return ""
}
