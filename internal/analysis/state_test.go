package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// complete returns a cause with a complete hypothesis and the given decision
// fields layered on top.
func complete(mutate func(*types.Cause)) types.Cause {
	c := types.Cause{ID: "c1", Suspect: "Pump 7", Accusation: "is leaking"}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func TestHypothesisComplete(t *testing.T) {
	tests := []struct {
		name  string
		cause types.Cause
		want  bool
	}{
		{"both fields", complete(nil), true},
		{"empty", types.Cause{}, false},
		{"suspect only", types.Cause{Suspect: "Pump 7"}, false},
		{"accusation too short", types.Cause{Suspect: "Pump 7", Accusation: "ok"}, false},
		{"punctuation does not count", types.Cause{Suspect: "...", Accusation: "is leaking"}, false},
		{"impact is irrelevant", types.Cause{Impact: "a plant shutdown"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HypothesisComplete(tt.cause))
		})
	}
}

func TestComputeState(t *testing.T) {
	tests := []struct {
		name  string
		cause types.Cause
		want  State
	}{
		{
			"incomplete hypothesis is draft",
			types.Cause{Suspect: "Pump 7"},
			StateDraft,
		},
		{
			"incomplete hypothesis stays draft even with a verdict",
			types.Cause{Suspect: "Pump 7", Decision: types.DecisionExplains},
			StateDraft,
		},
		{
			"complete without verdict is pending",
			complete(nil),
			StatePending,
		},
		{
			"explains without support is pending",
			complete(func(c *types.Cause) { c.Decision = types.DecisionExplains }),
			StatePending,
		},
		{
			"explains with one explanation is pending",
			complete(func(c *types.Cause) {
				c.Decision = types.DecisionExplains
				c.ExplanationIs = "the east wing floods"
			}),
			StatePending,
		},
		{
			"explains fully supported",
			complete(func(c *types.Cause) {
				c.Decision = types.DecisionExplains
				c.ExplanationIs = "the east wing floods"
				c.ExplanationIsNot = "the west wing"
			}),
			StateExplained,
		},
		{
			"conditional without assumption is pending",
			complete(func(c *types.Cause) { c.Decision = types.DecisionConditional }),
			StatePending,
		},
		{
			"conditional with assumption but no test plan",
			complete(func(c *types.Cause) {
				c.Decision = types.DecisionConditional
				c.Assumptions = "the gauge is accurate"
			}),
			StateConditionalPending,
		},
		{
			"conditional with partial test plan",
			complete(func(c *types.Cause) {
				c.Decision = types.DecisionConditional
				c.Assumptions = "the gauge is accurate"
				c.NextTest = types.NextTest{Text: "swap the gauge", Owner: "dana"}
			}),
			StateConditionalPending,
		},
		{
			"conditional with full test plan",
			complete(func(c *types.Cause) {
				c.Decision = types.DecisionConditional
				c.Assumptions = "the gauge is accurate"
				c.NextTest = types.NextTest{Text: "swap the gauge", Owner: "dana", ETA: "2024-05-01"}
			}),
			StateConditional,
		},
		{
			"does_not_explain is failed",
			complete(func(c *types.Cause) { c.Decision = types.DecisionDoesNotExplain }),
			StateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.cause))
		})
	}
}

func TestCountAssumptions(t *testing.T) {
	withAssumption := func(test types.NextTest) types.Cause {
		return complete(func(c *types.Cause) {
			c.Decision = types.DecisionConditional
			c.Assumptions = "the gauge is accurate"
			c.NextTest = test
		})
	}

	assert.Equal(t, 1, CountAssumptions(withAssumption(types.NextTest{})))
	assert.Equal(t, 1, CountAssumptions(withAssumption(types.NextTest{Text: "swap the gauge", Owner: "dana", ETA: "2024-05-01"})))
	assert.Equal(t, 0, CountAssumptions(complete(nil)))
	assert.Equal(t, 0, CountAssumptions(complete(func(c *types.Cause) { c.Decision = types.DecisionConditional })))
	assert.Equal(t, 0, CountAssumptions(complete(func(c *types.Cause) { c.Decision = types.DecisionDoesNotExplain })))
}

func TestSetDecisionValidation(t *testing.T) {
	s := newTestSession(t, Deps{})
	c := s.AddCause()

	assert.ErrorIs(t, s.SetDecision(c.ID, "probably"), types.ErrInvalidDecision)

	for _, d := range []string{
		types.DecisionNone,
		types.DecisionExplains,
		types.DecisionConditional,
		types.DecisionDoesNotExplain,
	} {
		assert.NoError(t, s.SetDecision(c.ID, d))
		got, err := s.Cause(c.ID)
		assert.NoError(t, err)
		assert.Equal(t, d, got.Decision)
	}
}
