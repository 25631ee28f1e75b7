// Package hypothesis turns a cause's structured fields into a grammatical
// summary sentence, with a deterministic fallback ladder for incomplete
// input. The grammar sniffing is heuristic by nature and therefore lives
// behind the Classifier interface so it can be swapped or tested on its own.
// Implements: prd004-hypothesis-text R1-R5;
//
//	docs/ARCHITECTURE § Hypothesis Synthesizer.
package hypothesis

import "github.com/mesh-intelligence/casefile/internal/text"

// Classification is the grammatical profile of a free-text clause.
type Classification struct {
	IsCopula bool // clause starts with is/are/was/were
	IsGerund bool // clause starts with an "-ing" form
	HasVerb  bool // clause contains a verb-like pattern anywhere
}

// Classifier sniffs the grammatical shape of a clause. Implementations must
// be pure and deterministic.
type Classifier interface {
	Classify(clause string) Classification
}

// HeuristicClassifier is the default Classifier: regular-expression and
// token-list sniffing over the clause text. It will misclassify edge cases;
// that is accepted, the output only steers sentence assembly.
type HeuristicClassifier struct{}

// Classify implements Classifier.
func (HeuristicClassifier) Classify(clause string) Classification {
	return Classification{
		IsCopula: text.StartsWithCopula(clause),
		IsGerund: text.StartsWithGerund(clause),
		HasVerb:  text.HasVerb(clause),
	}
}
