// Cause entity: a single hypothesis about what produced the observed
// deviation, with the user's decision and its supporting fields.
// Implements: prd003-cause-decisions R1, R2; prd001-snapshot-core R3.
package types

import "errors"

// Decision values. Empty string means no verdict has been recorded yet.
const (
	DecisionNone           = ""
	DecisionExplains       = "explains"
	DecisionConditional    = "conditional"
	DecisionDoesNotExplain = "does_not_explain"
)

// validDecisions is the set of recognized decision values.
var validDecisions = map[string]bool{
	DecisionNone:           true,
	DecisionExplains:       true,
	DecisionConditional:    true,
	DecisionDoesNotExplain: true,
}

// ValidDecision reports whether d is a recognized decision value.
func ValidDecision(d string) bool {
	return validDecisions[d]
}

// Cause represents one possible-cause hypothesis. The ID is a UUID v7,
// generated on creation, stable for the lifetime of the cause, and used as a
// foreign key by converted actions.
type Cause struct {
	ID               string   `json:"id"`
	Suspect          string   `json:"suspect"`
	Accusation       string   `json:"accusation"`
	Impact           string   `json:"impact"`
	SummaryText      string   `json:"summaryText"`
	Decision         string   `json:"decision"`
	ExplanationIs    string   `json:"explanation_is"`
	ExplanationIsNot string   `json:"explanation_is_not"`
	Assumptions      string   `json:"assumptions"`
	NextTest         NextTest `json:"next_test"`
	Editing          bool     `json:"editing"`
	TestingOpen      bool     `json:"testingOpen"`
}

// NextTest is the planned validation step for a conditional hypothesis.
// Always present as a struct with string fields, never null on the wire.
type NextTest struct {
	Text  string `json:"text"`
	Owner string `json:"owner"`
	ETA   string `json:"eta"`
}

// Complete reports whether the test plan is fully populated.
func (t NextTest) Complete() bool {
	return t.Text != "" && t.Owner != "" && t.ETA != ""
}

// Empty reports whether no part of the test plan has been entered.
func (t NextTest) Empty() bool {
	return t.Text == "" && t.Owner == "" && t.ETA == ""
}

// Cause operation errors (prd003-cause-decisions R7).
var (
	ErrCauseNotFound   = errors.New("cause not found")
	ErrCauseFailed     = errors.New("cause is marked does_not_explain")
	ErrInvalidDecision = errors.New("invalid decision value")
	ErrNotConditional  = errors.New("cause is not in the conditional state")
)
