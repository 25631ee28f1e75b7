// Actions table accessor: the ActionStore implementation. Rows hydrate to
// types.Action; every mutation persists the full actions.jsonl atomically.
// Implements: prd006-sqlite-store R3 (list/create/patch);
//
//	prd005-action-bridge R2 (store contract).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

const actionColumns = "action_id, analysis_id, summary, detail, owner, due_at, hypothesis_id, state, created_at"

// patchableActionFields are the fields PatchAction accepts.
var patchableActionFields = map[string]bool{
	"summary": true,
	"detail":  true,
	"owner":   true,
	"due_at":  true,
	"state":   true,
}

// loadActionsJSONL loads actions.jsonl into the freshly-built actions table.
// Malformed lines were already dropped by the reader; records that fail to
// decode as action records are skipped as well.
func (b *Backend) loadActionsJSONL() error {
	records, err := readJSONL(b.actionsPath())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		var a actionJSON
		if err := json.Unmarshal(rec, &a); err != nil || a.ActionID == "" {
			continue
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO actions ("+actionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			a.ActionID, a.AnalysisID, a.Summary, a.Detail, a.Owner,
			a.DueAt, a.HypothesisID, a.State, a.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("loading action %s: %w", a.ActionID, err)
		}
	}
	return tx.Commit()
}

// actionsPath returns the actions.jsonl location in the data directory.
func (b *Backend) actionsPath() string {
	return filepath.Join(b.dataDir, actionsFileName)
}

// ListActions returns all actions for the analysis, oldest first.
func (b *Backend) ListActions(analysisID string) ([]types.Action, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT "+actionColumns+" FROM actions WHERE analysis_id = ? ORDER BY created_at, action_id",
		analysisID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	defer rows.Close()

	actions := []types.Action{}
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

// CreateAction creates one action with a generated UUID v7 ID. Returns
// ErrEmptySummary when the draft has no summary.
func (b *Backend) CreateAction(analysisID string, draft types.ActionDraft) (*types.Action, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if draft.Summary == "" {
		return nil, types.ErrEmptySummary
	}
	if analysisID == "" {
		return nil, types.ErrInvalidID
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating UUID v7: %w", err)
	}

	action := types.Action{
		ActionID:   id.String(),
		AnalysisID: analysisID,
		Summary:    draft.Summary,
		Detail:     draft.Detail,
		Owner:      draft.Owner,
		DueAt:      draft.DueAt,
		Links:      draft.Links,
		State:      types.ActionStateOpen,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	_, err = b.db.Exec(
		"INSERT INTO actions ("+actionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		action.ActionID, action.AnalysisID, action.Summary, action.Detail, action.Owner,
		timePtrString(action.DueAt), action.Links.HypothesisID, action.State,
		action.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting action: %w", err)
	}

	if err := b.persistActionsJSONL(); err != nil {
		return nil, fmt.Errorf("persisting actions: %w", err)
	}
	return &action, nil
}

// PatchAction applies field updates to an existing action. Unknown fields
// are rejected with ErrInvalidID semantics kept for the ID only; field names
// outside the patchable set return an error.
func (b *Backend) PatchAction(actionID string, fields map[string]any) (*types.Action, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if actionID == "" {
		return nil, types.ErrInvalidID
	}

	for name, value := range fields {
		if !patchableActionFields[name] {
			return nil, fmt.Errorf("field %q is not patchable", name)
		}
		res, err := b.db.Exec(
			fmt.Sprintf("UPDATE actions SET %s = ? WHERE action_id = ?", name),
			patchValue(value), actionID,
		)
		if err != nil {
			return nil, fmt.Errorf("patching %s: %w", name, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, types.ErrNotFound
		}
	}

	row := b.db.QueryRow("SELECT "+actionColumns+" FROM actions WHERE action_id = ?", actionID)
	action, err := scanAction(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reloading action %s: %w", actionID, err)
	}

	if err := b.persistActionsJSONL(); err != nil {
		return nil, fmt.Errorf("persisting actions: %w", err)
	}
	return &action, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanAction hydrates one actions row.
func scanAction(s scanner) (types.Action, error) {
	var (
		a       types.Action
		dueAt   sql.NullString
		created string
	)
	err := s.Scan(&a.ActionID, &a.AnalysisID, &a.Summary, &a.Detail, &a.Owner,
		&dueAt, &a.Links.HypothesisID, &a.State, &created)
	if err != nil {
		return types.Action{}, err
	}
	if dueAt.Valid && dueAt.String != "" {
		if t, err := time.Parse(time.RFC3339, dueAt.String); err == nil {
			a.DueAt = &t
		}
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return a, nil
}

// persistActionsJSONL writes every actions row to actions.jsonl atomically.
func (b *Backend) persistActionsJSONL() error {
	rows, err := b.db.Query("SELECT " + actionColumns + " FROM actions ORDER BY created_at, action_id")
	if err != nil {
		return fmt.Errorf("querying actions for persist: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return fmt.Errorf("scanning action for persist: %w", err)
		}
		rec, err := json.Marshal(toActionJSON(action))
		if err != nil {
			return fmt.Errorf("marshaling action: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return writeJSONL(b.actionsPath(), records)
}

// toActionJSON converts an entity to its JSONL record form.
func toActionJSON(a types.Action) actionJSON {
	return actionJSON{
		ActionID:     a.ActionID,
		AnalysisID:   a.AnalysisID,
		Summary:      a.Summary,
		Detail:       a.Detail,
		Owner:        a.Owner,
		DueAt:        timePtrString(a.DueAt),
		HypothesisID: a.Links.HypothesisID,
		State:        a.State,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

// timePtrString renders a nullable timestamp as a nullable RFC 3339 string.
func timePtrString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// patchValue converts a patch field value to its column representation.
func patchValue(v any) any {
	switch t := v.(type) {
	case *time.Time:
		if s := timePtrString(t); s != nil {
			return *s
		}
		return nil
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}
