// Evidence pairing: which worksheet rows can back a hypothesis test, and
// token substitution for generated labels.
// Implements: prd003-cause-decisions R4.3 (eligible rows, token substitution).
package analysis

import (
	"strings"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// EligibleRows returns the worksheet rows that currently carry both an IS
// and an IS-NOT observation, in their natural row order. With no worksheet
// attached, the snapshot's own evidence table is consulted.
func (s *Session) EligibleRows() []types.EvidenceRow {
	rows := s.snap.Table
	if s.deps.Worksheet != nil {
		rows = s.deps.Worksheet.Rows()
	}

	eligible := []types.EvidenceRow{}
	for _, row := range rows {
		if row.Eligible() {
			eligible = append(eligible, row)
		}
	}
	return eligible
}

// SubstituteTokens replaces the <is> and <is not> tokens in a generated
// label with the row's literal observation text.
func SubstituteTokens(label string, row types.EvidenceRow) string {
	label = strings.ReplaceAll(label, "<is not>", row.IsNot)
	return strings.ReplaceAll(label, "<is>", row.Is)
}
