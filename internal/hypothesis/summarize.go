// Sentence assembly for hypothesis summaries and decision summaries.
// Implements: prd004-hypothesis-text R2 (fallback ladder), R3 (connector
// table), R5 (preview truncation); prd005-action-bridge R2.2 (decision
// summary).
package hypothesis

import (
	"fmt"

	"github.com/mesh-intelligence/casefile/internal/text"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// Fixed placeholders returned for incomplete hypotheses. Never empty: the
// summary line is always rendered.
const (
	PlaceholderEmpty      = "Describe who or what you suspect and what you think it is doing."
	PlaceholderIncomplete = "Add a suspect and an accusation to complete this hypothesis."
)

// previewFragmentMax is the per-fragment rune budget in preview mode, so a
// preview line never balloons regardless of field length.
const previewFragmentMax = 60

// minImpactLen is the minimum cleaned length for the impact field to earn a
// second sentence.
const minImpactLen = 3

// Fields are the structured hypothesis inputs.
type Fields struct {
	Suspect    string
	Accusation string
	Impact     string
}

// Options controls summary rendering.
type Options struct {
	// Preview truncates each substituted fragment independently.
	Preview bool
}

// Synthesizer assembles summary sentences from hypothesis fields. It is
// stateless apart from the classifier strategy; Summarize is pure and
// deterministic.
type Synthesizer struct {
	classifier Classifier
}

// New returns a Synthesizer using the heuristic classifier.
func New() *Synthesizer {
	return NewWithClassifier(HeuristicClassifier{})
}

// NewWithClassifier returns a Synthesizer using the given classifier
// strategy.
func NewWithClassifier(c Classifier) *Synthesizer {
	return &Synthesizer{classifier: c}
}

// Summarize composes the human-readable hypothesis summary: one sentence
// joining suspect and accusation by grammatical sniffing, plus an impact
// sentence when the impact field is meaningful.
func (s *Synthesizer) Summarize(f Fields, opts Options) string {
	suspect := text.Normalize(f.Suspect)
	accusation := text.Normalize(f.Accusation)
	impact := text.Normalize(f.Impact)

	if suspect == "" && accusation == "" && impact == "" {
		return PlaceholderEmpty
	}
	// Impact alone is not a hypothesis.
	if suspect == "" || accusation == "" {
		return PlaceholderIncomplete
	}

	if opts.Preview {
		suspect = text.Truncate(suspect, previewFragmentMax)
		accusation = text.Truncate(accusation, previewFragmentMax)
		impact = text.Truncate(impact, previewFragmentMax)
	}

	out := s.suspicionSentence(suspect, accusation)
	if text.Meaningful(impact, minImpactLen) {
		out += " " + s.impactSentence(impact)
	}
	return out
}

// suspicionSentence joins suspect and accusation with a connector chosen by
// the classifier: copular clauses join directly with number agreement,
// gerunds become a "they are" clause, verb phrases an "as it" clause, and
// bare noun phrases fall back to "is experiencing".
func (s *Synthesizer) suspicionSentence(suspect, accusation string) string {
	cls := s.classifier.Classify(accusation)
	plural := text.LooksPlural(suspect)

	switch {
	case cls.IsCopula:
		return fmt.Sprintf("We suspect %s %s.", suspect, agreeCopula(accusation, plural))
	case cls.IsGerund:
		return fmt.Sprintf("We suspect %s; they are %s.", suspect, accusation)
	case cls.HasVerb:
		return fmt.Sprintf("We suspect %s, as it %s.", suspect, accusation)
	default:
		copula := "is"
		if plural {
			copula = "are"
		}
		return fmt.Sprintf("We suspect %s %s experiencing %s.", suspect, copula, accusation)
	}
}

// impactSentence renders the consequence clause with the same connector
// logic as the suspicion sentence.
func (s *Synthesizer) impactSentence(impact string) string {
	cls := s.classifier.Classify(impact)
	switch {
	case cls.IsGerund:
		return fmt.Sprintf("This results in %s.", impact)
	case cls.HasVerb && !cls.IsCopula:
		return fmt.Sprintf("This could lead them to %s.", impact)
	default:
		return fmt.Sprintf("This could lead to %s.", impact)
	}
}

// copulaAgreement maps a leading copula to its number-agreed form.
var copulaAgreement = map[bool]map[string]string{
	true:  {"is": "are", "was": "were"}, // plural subject
	false: {"are": "is", "were": "was"}, // singular subject
}

// agreeCopula fixes the leading copula of a clause to agree with the
// subject's number, leaving the rest of the clause untouched.
func agreeCopula(clause string, plural bool) string {
	first := text.FirstWord(clause)
	fixed, ok := copulaAgreement[plural][first]
	if !ok {
		return clause
	}
	rest := text.Clean(clause)[len(first):]
	return fixed + rest
}

// SummarizeDecision renders the one-sentence verdict summary used in the
// action-conversion detail blob, mirroring the hypothesis phrasing rules for
// the decision fields.
func (s *Synthesizer) SummarizeDecision(c types.Cause) string {
	switch c.Decision {
	case types.DecisionExplains:
		is := text.Normalize(c.ExplanationIs)
		isNot := text.Normalize(c.ExplanationIsNot)
		if is == "" || isNot == "" {
			return "Marked as explaining the incident, but the supporting explanation is incomplete."
		}
		return fmt.Sprintf("This cause explains why %s is observed and why %s is not.", is, isNot)
	case types.DecisionConditional:
		assumptions := text.Normalize(c.Assumptions)
		if assumptions == "" {
			return "Marked as conditional without a stated assumption."
		}
		out := fmt.Sprintf("This would explain the incident only if %s.", assumptions)
		if c.NextTest.Complete() {
			out += fmt.Sprintf(" Planned test: %s (owner %s, due %s).",
				text.Normalize(c.NextTest.Text), text.Clean(c.NextTest.Owner), text.Clean(c.NextTest.ETA))
		}
		return out
	case types.DecisionDoesNotExplain:
		return "This cause does not explain the incident and has been ruled out."
	default:
		return "No decision has been recorded for this cause."
	}
}
