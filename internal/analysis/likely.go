// Likely-Cause selection and the decision setter that enforces its
// invariant: at most one cause holds the designation, and never one whose
// decision is does_not_explain.
// Implements: prd003-cause-decisions R4, R5.
package analysis

import (
	"fmt"

	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// LikelyCause returns the ID of the currently designated likely cause, or
// the empty string when none is selected.
func (s *Session) LikelyCause() string {
	return s.snap.LikelyCauseID
}

// SetLikelyCause designates the cause as the single likely cause, or clears
// the designation when id is empty. Setting the already-selected cause is a
// no-op. A cause in the failed state is refused with ErrCauseFailed and no
// notification; the selection is left unchanged.
func (s *Session) SetLikelyCause(id string) error {
	if id == s.snap.LikelyCauseID {
		return nil
	}
	if id == "" {
		s.snap.LikelyCauseID = ""
		s.notify("Likely cause cleared.")
		return nil
	}

	c, err := s.cause(id)
	if err != nil {
		return err
	}
	if Compute(*c) == StateFailed {
		return types.ErrCauseFailed
	}

	s.snap.LikelyCauseID = id
	s.notify(fmt.Sprintf("Marked %s as the likely cause.", causeLabel(*c)))
	return nil
}

// SetDecision records the user's verdict on a cause. Marking the designated
// likely cause as does_not_explain clears the designation and announces the
// clearing.
func (s *Session) SetDecision(id, decision string) error {
	if !types.ValidDecision(decision) {
		return types.ErrInvalidDecision
	}
	c, err := s.cause(id)
	if err != nil {
		return err
	}
	c.Decision = decision

	if decision == types.DecisionDoesNotExplain && s.snap.LikelyCauseID == id {
		s.snap.LikelyCauseID = ""
		s.notify(fmt.Sprintf("%s no longer explains the incident; likely cause cleared.", causeLabel(*c)))
	}
	return nil
}

// causeLabel is the short human-readable handle for a cause in
// notifications.
func causeLabel(c types.Cause) string {
	label := text.Truncate(text.Normalize(c.Suspect), 40)
	if label == "" {
		return "This cause"
	}
	return label
}
