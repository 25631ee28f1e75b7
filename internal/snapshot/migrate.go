// Package snapshot implements the versioned snapshot migration engine: a
// registry of per-version transforms followed by a structural normalization
// pass that is always executed. Any JSON-decodable value goes in; either a
// fully-typed current snapshot or nil comes out. Nothing in this package
// panics or returns an error past the migration boundary; malformed input
// degrades to defaults field by field.
// Implements: prd002-migration-engine R1-R6;
//
//	docs/ARCHITECTURE § Migration Engine.
package snapshot

import (
	"encoding/json"

	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// migrations maps a schema version to the transform that lifts a payload of
// that version to the next one. The engine increments the version after each
// applied transform; transforms never touch meta.version themselves.
var migrations = map[int]func(map[string]any) map[string]any{
	0: migrateV0toV1,
	1: migrateV1toV2,
	2: migrateV2toV3,
}

// Migrate converts an arbitrary, possibly legacy, decoded payload into the
// current snapshot shape. Returns nil for non-object input. Current
// snapshots pass through idempotently.
func Migrate(raw any) *types.Snapshot {
	m := asMap(raw)
	if m == nil {
		return nil
	}

	version := resolveVersion(m)
	visited := make(map[int]bool)
	for version < types.SchemaVersion {
		if visited[version] {
			// A transform failed to advance the version; stop rather
			// than loop.
			break
		}
		visited[version] = true

		fn, ok := migrations[version]
		if !ok {
			// No transform registered for this version. Not every
			// version was necessarily visited; the normalization
			// pass handles whatever shape remains.
			break
		}
		m = fn(m)
		version++
		setVersion(m, version)
	}

	return normalize(m)
}

// Decode unmarshals a serialized snapshot blob and migrates it. Returns nil
// for unparsable or non-object blobs.
func Decode(blob []byte) *types.Snapshot {
	var raw any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil
	}
	return Migrate(raw)
}

// Encode serializes a snapshot for storage or export.
func Encode(s *types.Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// resolveVersion extracts meta.version from the payload, parsing numeric
// strings and defaulting to 0 when absent or unparsable.
func resolveVersion(m map[string]any) int {
	meta := asMap(m["meta"])
	if meta == nil {
		return 0
	}
	v, ok := text.Int(meta["version"])
	if !ok || v < 0 {
		return 0
	}
	return v
}

// setVersion stamps meta.version on the working payload, creating meta if a
// legacy shape lacked it.
func setVersion(m map[string]any, version int) {
	meta := asMap(m["meta"])
	if meta == nil {
		meta = make(map[string]any)
		m["meta"] = meta
	}
	meta["version"] = version
}

// asMap returns v as a JSON object, or nil if it is anything else.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice returns v as a JSON array, or nil if it is anything else.
func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
