// Per-cause state computation. The state is derived on demand from the
// cause's current field values; it is never stored, so it can never go
// stale.
// Implements: prd003-cause-decisions R3 (state machine), R6 (badge count).
package analysis

import (
	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// State is the computed lifecycle state of a cause.
type State string

// Cause states.
const (
	StateDraft              State = "draft"
	StatePending            State = "pending"
	StateExplained          State = "explained"
	StateConditional        State = "conditional"
	StateConditionalPending State = "conditional_pending"
	StateFailed             State = "failed"
)

// minFieldLen is the hard minimum length, after normalization, for the
// suspect and accusation fields of a complete hypothesis.
const minFieldLen = 3

// HypothesisComplete reports whether the suspect and accusation fields meet
// the hard minimum after normalization. The impact field does not count
// toward completeness.
func HypothesisComplete(c types.Cause) bool {
	return len([]rune(text.Normalize(c.Suspect))) >= minFieldLen &&
		len([]rune(text.Normalize(c.Accusation))) >= minFieldLen
}

// Compute derives the state of a cause from its fields:
//
//	draft               hypothesis incomplete
//	pending             hypothesis complete, verdict missing or unsupported
//	explained           explains + both explanation fields populated
//	conditional         conditional + assumption + full test plan
//	conditional_pending conditional + assumption, test plan partial or absent
//	failed              does_not_explain
func Compute(c types.Cause) State {
	if !HypothesisComplete(c) {
		return StateDraft
	}

	switch c.Decision {
	case types.DecisionDoesNotExplain:
		return StateFailed
	case types.DecisionExplains:
		if text.Clean(c.ExplanationIs) != "" && text.Clean(c.ExplanationIsNot) != "" {
			return StateExplained
		}
		return StatePending
	case types.DecisionConditional:
		if text.Clean(c.Assumptions) == "" {
			return StatePending
		}
		if c.NextTest.Complete() {
			return StateConditional
		}
		return StateConditionalPending
	default:
		return StatePending
	}
}

// State derives the state of a cause; see Compute.
func (s *Session) State(c types.Cause) State {
	return Compute(c)
}

// CountAssumptions returns the badge count for a cause: 1 when it carries a
// live assumption (conditional or conditional-pending with a non-empty
// assumption), else 0. The decision model tracks a single assumption per
// cause, so this is a flag rather than a list length.
func CountAssumptions(c types.Cause) int {
	switch Compute(c) {
	case StateConditional, StateConditionalPending:
		if text.Clean(c.Assumptions) != "" {
			return 1
		}
	}
	return 0
}
