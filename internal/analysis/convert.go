// Action-conversion bridge: promotes a conditional cause's planned test into
// a task record in the external action-tracking store and links it back by
// hypothesis ID. The bridge re-validates the cause state rather than trust
// the caller, and makes no state change before the store accepts the
// request, so a rejection needs no rollback.
// Implements: prd005-action-bridge R1-R4.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// ErrNoStore is returned when conversion is attempted without an action
// store attached.
var ErrNoStore = errors.New("no action store configured")

// etaLayouts are the timestamp forms accepted for next_test.eta, most
// specific first.
var etaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// Convert promotes the cause's planned test into an action. Preconditions:
// the cause exists and is in the conditional state (assumption recorded,
// test text, owner, and ETA all present). On success the action-count cache
// and the snapshot's cached action list are refreshed.
func (s *Session) Convert(causeID string) (*types.Action, error) {
	c, err := s.cause(causeID)
	if err != nil {
		return nil, err
	}
	if Compute(*c) != StateConditional {
		return nil, types.ErrNotConditional
	}
	if s.deps.Store == nil {
		return nil, ErrNoStore
	}

	detail := s.Summary(*c, false) + "\n\n" + s.synth.SummarizeDecision(*c)
	draft := types.ActionDraft{
		Summary: text.Normalize(c.NextTest.Text),
		Detail:  detail,
		Owner:   text.Clean(c.NextTest.Owner),
		DueAt:   parseETA(c.NextTest.ETA),
		Links:   types.ActionLinks{HypothesisID: c.ID},
	}

	action, err := s.deps.Store.CreateAction(s.snap.Actions.AnalysisID, draft)
	if err == nil && action == nil {
		err = errors.New("action store rejected the request")
	}
	if err != nil {
		s.notify(fmt.Sprintf("Could not create an action: %s", err))
		return nil, fmt.Errorf("convert cause %s: %w", causeID, err)
	}

	s.snap.Actions.Items = append(s.snap.Actions.Items, *action)
	s.refreshActionCounts()
	s.notify(fmt.Sprintf("Action created for %s.", causeLabel(*c)))
	return action, nil
}

// ActionCount returns the cached number of actions linked to the cause.
func (s *Session) ActionCount(causeID string) int {
	return s.actionCounts[causeID]
}

// refreshActionCounts rebuilds the per-cause action counts from the store so
// badges are accurate on next read. When the store cannot be listed the
// snapshot's cached items are counted instead.
func (s *Session) refreshActionCounts() {
	items := s.snap.Actions.Items
	if s.deps.Store != nil {
		if listed, err := s.deps.Store.ListActions(s.snap.Actions.AnalysisID); err == nil {
			items = listed
		}
	}

	counts := make(map[string]int)
	for _, a := range items {
		if a.Links.HypothesisID != "" {
			counts[a.Links.HypothesisID]++
		}
	}
	s.actionCounts = counts
}

// RefreshActionCounts reloads the per-cause action counts from the store.
func (s *Session) RefreshActionCounts() {
	s.refreshActionCounts()
}

// parseETA parses the normalized ETA field into an absolute instant, or nil
// when it does not parse.
func parseETA(eta string) *time.Time {
	eta = text.Clean(eta)
	if eta == "" {
		return nil
	}
	for _, layout := range etaLayouts {
		if t, err := time.Parse(layout, eta); err == nil {
			return &t
		}
	}
	return nil
}
