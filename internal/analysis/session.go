// Package analysis owns the possible-cause decision engine: an explicit
// Session context object holding the causes array, the Likely-Cause
// selection, and the action-count cache. Everything that used to be implicit
// page state in the browser client is a field here, so multiple independent
// sessions can coexist and tests do not leak into each other.
// Implements: prd003-cause-decisions R1-R6; prd005-action-bridge R1-R4;
//
//	docs/ARCHITECTURE § Decision Engine.
package analysis

import (
	"github.com/google/uuid"
	"github.com/mesh-intelligence/casefile/internal/hypothesis"
	"github.com/mesh-intelligence/casefile/internal/snapshot"
	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// Deps are the external collaborators a Session consumes. Any of them may be
// nil: a nil Store disables conversion, a nil Notifier drops notifications,
// a nil Worksheet falls back to the snapshot's own evidence table.
type Deps struct {
	Store     types.ActionStore
	Notifier  types.Notifier
	Worksheet types.Worksheet
}

// Session is the single-owner mutable state of one analysis. Access is
// synchronous and non-concurrent: every operation runs to completion inside
// one user-interaction callback.
type Session struct {
	snap         *types.Snapshot
	deps         Deps
	synth        *hypothesis.Synthesizer
	actionCounts map[string]int
}

// NewSession wraps a migrated snapshot in a session. A nil snapshot starts a
// fresh, fully-defaulted analysis. An analysis ID is assigned on first use
// so actions can be keyed to this session.
func NewSession(snap *types.Snapshot, deps Deps) *Session {
	if snap == nil {
		snap = snapshot.Migrate(map[string]any{})
	}
	if snap.Actions.AnalysisID == "" {
		snap.Actions.AnalysisID = uuid.NewString()
	}
	return &Session{
		snap:         snap,
		deps:         deps,
		synth:        hypothesis.New(),
		actionCounts: make(map[string]int),
	}
}

// AnalysisID returns the identifier actions are keyed by.
func (s *Session) AnalysisID() string {
	return s.snap.Actions.AnalysisID
}

// notify sends a message through the notifier, if one is attached.
func (s *Session) notify(message string) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(message)
	}
}

// cause returns a pointer into the causes array, valid until the array is
// next modified.
func (s *Session) cause(id string) (*types.Cause, error) {
	for i := range s.snap.Causes {
		if s.snap.Causes[i].ID == id {
			return &s.snap.Causes[i], nil
		}
	}
	return nil, types.ErrCauseNotFound
}

// AddCause appends a fresh cause with all decision fields blank and editing
// enabled, and returns it.
func (s *Session) AddCause() types.Cause {
	c := types.Cause{
		ID:      snapshot.NewCauseID(),
		Editing: true,
	}
	s.snap.Causes = append(s.snap.Causes, c)
	return c
}

// RemoveCause deletes a cause. Causes are only ever removed explicitly; if
// the removed cause held the Likely-Cause designation, the designation is
// cleared.
func (s *Session) RemoveCause(id string) error {
	for i := range s.snap.Causes {
		if s.snap.Causes[i].ID != id {
			continue
		}
		s.snap.Causes = append(s.snap.Causes[:i], s.snap.Causes[i+1:]...)
		if s.snap.LikelyCauseID == id {
			s.snap.LikelyCauseID = ""
		}
		delete(s.actionCounts, id)
		return nil
	}
	return types.ErrCauseNotFound
}

// Cause returns a copy of the cause with the given ID.
func (s *Session) Cause(id string) (types.Cause, error) {
	c, err := s.cause(id)
	if err != nil {
		return types.Cause{}, err
	}
	return *c, nil
}

// Causes returns a copy of the causes array in its natural order.
func (s *Session) Causes() []types.Cause {
	out := make([]types.Cause, len(s.snap.Causes))
	copy(out, s.snap.Causes)
	return out
}

// SetHypothesis commits the free-text hypothesis fields: values are
// normalized (trim, collapse, strip trailing punctuation), the summary text
// is re-synthesized, and editing mode ends.
func (s *Session) SetHypothesis(id, suspect, accusation, impact string) error {
	c, err := s.cause(id)
	if err != nil {
		return err
	}
	c.Suspect = text.Normalize(suspect)
	c.Accusation = text.Normalize(accusation)
	c.Impact = text.Normalize(impact)
	c.Editing = false
	s.resummarize(c)
	return nil
}

// SetExplanations records the IS / IS-NOT explanation pair for an
// "explains" verdict.
func (s *Session) SetExplanations(id, explainsIs, explainsIsNot string) error {
	c, err := s.cause(id)
	if err != nil {
		return err
	}
	c.ExplanationIs = text.Clean(explainsIs)
	c.ExplanationIsNot = text.Clean(explainsIsNot)
	return nil
}

// SetAssumptions records the single assumption backing a conditional
// verdict.
func (s *Session) SetAssumptions(id, assumptions string) error {
	c, err := s.cause(id)
	if err != nil {
		return err
	}
	c.Assumptions = text.Clean(assumptions)
	return nil
}

// SetNextTest records the planned validation step for a conditional cause.
func (s *Session) SetNextTest(id string, t types.NextTest) error {
	c, err := s.cause(id)
	if err != nil {
		return err
	}
	c.NextTest = types.NextTest{
		Text:  text.Clean(t.Text),
		Owner: text.Clean(t.Owner),
		ETA:   text.Clean(t.ETA),
	}
	return nil
}

// resummarize keeps the stored human-readable summary in sync with the
// hypothesis fields.
func (s *Session) resummarize(c *types.Cause) {
	c.SummaryText = s.synth.Summarize(hypothesis.Fields{
		Suspect:    c.Suspect,
		Accusation: c.Accusation,
		Impact:     c.Impact,
	}, hypothesis.Options{})
}

// Summary returns the synthesized hypothesis sentence for a cause. Preview
// mode truncates each substituted fragment.
func (s *Session) Summary(c types.Cause, preview bool) string {
	return s.synth.Summarize(hypothesis.Fields{
		Suspect:    c.Suspect,
		Accusation: c.Accusation,
		Impact:     c.Impact,
	}, hypothesis.Options{Preview: preview})
}

// Export returns the snapshot in its current state for persistence. The
// stored summary of every cause is refreshed first so the persisted blob
// never carries a stale sentence.
func (s *Session) Export() *types.Snapshot {
	for i := range s.snap.Causes {
		s.resummarize(&s.snap.Causes[i])
	}
	return s.snap
}
