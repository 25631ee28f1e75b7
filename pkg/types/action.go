// Action entity and the external action-tracking store interface.
// Implements: prd005-action-bridge R1, R2; prd006-sqlite-store R3.
package types

import (
	"errors"
	"time"
)

// Action states.
const (
	ActionStateOpen = "open"
	ActionStateDone = "done"
)

// ActionLinks ties an action back to the entity it was created from.
type ActionLinks struct {
	HypothesisID string `json:"hypothesisId"`
}

// Action is one task record in the external action-tracking store. Casefile
// creates actions through the bridge but does not own their lifecycle after
// creation.
type Action struct {
	ActionID   string      `json:"action_id"`
	AnalysisID string      `json:"analysis_id"`
	Summary    string      `json:"summary"`
	Detail     string      `json:"detail"`
	Owner      string      `json:"owner"`
	DueAt      *time.Time  `json:"due_at"`
	Links      ActionLinks `json:"links"`
	State      string      `json:"state"`
	CreatedAt  time.Time   `json:"created_at"`
}

// ActionDraft carries the fields of an action to be created.
type ActionDraft struct {
	Summary string
	Detail  string
	Owner   string
	DueAt   *time.Time
	Links   ActionLinks
}

// ActionStore is the external action-tracking interface the bridge consumes.
// A nil action or an error from CreateAction both mean "conversion failed".
type ActionStore interface {
	// ListActions returns all actions for the analysis, oldest first.
	ListActions(analysisID string) ([]Action, error)

	// CreateAction creates one action. Returns ErrEmptySummary if the
	// draft has no summary.
	CreateAction(analysisID string, draft ActionDraft) (*Action, error)

	// PatchAction applies field updates to an existing action.
	// Returns ErrNotFound if no action exists with that ID.
	PatchAction(actionID string, fields map[string]any) (*Action, error)
}

// Action store errors (prd006-sqlite-store R3.4).
var (
	ErrNotFound     = errors.New("entity not found")
	ErrInvalidID    = errors.New("invalid entity ID")
	ErrEmptySummary = errors.New("action summary must not be empty")
)
