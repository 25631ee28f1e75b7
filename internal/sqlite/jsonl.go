// JSONL and atomic file helpers. JSON files are the source of truth; every
// write goes through the temp-file, fsync, rename pattern so a crash never
// leaves a half-written file.
// Implements: prd006-sqlite-store R2.2 (record format), R4 (atomic writes,
// malformed-line tolerance).
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// actionJSON is the actions.jsonl record format. Unknown fields in stored
// records are ignored on load, for forward compatibility.
type actionJSON struct {
	ActionID     string  `json:"action_id"`
	AnalysisID   string  `json:"analysis_id"`
	Summary      string  `json:"summary"`
	Detail       string  `json:"detail"`
	Owner        string  `json:"owner"`
	DueAt        *string `json:"due_at"`
	HypothesisID string  `json:"hypothesis_id"`
	State        string  `json:"state"`
	CreatedAt    string  `json:"created_at"`
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line.
// Malformed lines are skipped. A missing file is not an error.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file.
func writeJSONL(path string, records []json.RawMessage) error {
	var buf []byte
	for _, rec := range records {
		buf = append(buf, rec...)
		buf = append(buf, '\n')
	}
	return writeFileAtomic(path, buf)
}

// writeFileAtomic writes data using the temp-file, fsync, rename pattern.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".casefile-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
