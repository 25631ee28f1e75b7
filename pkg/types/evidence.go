// Evidence row entity and the read-only worksheet interface.
// Implements: prd003-cause-decisions R4 (evidence eligibility);
//
//	docs/ARCHITECTURE § Consumed Interfaces.
package types

// EvidenceRow is one worksheet question with paired IS / IS-NOT
// observations. A row is eligible for evidence pairing when both values are
// non-empty.
type EvidenceRow struct {
	Question string `json:"question"`
	Is       string `json:"is"`
	IsNot    string `json:"isNot"`
}

// Eligible reports whether the row has both an IS and an IS-NOT value.
func (r EvidenceRow) Eligible() bool {
	return r.Is != "" && r.IsNot != ""
}

// Worksheet provides read-only access to the evidence table, in natural row
// order. The analysis core never writes through this interface.
type Worksheet interface {
	Rows() []EvidenceRow
}

// Notifier is the single sink for user-facing notifications (toasts in the
// browser client). Implementations must not block.
type Notifier interface {
	Notify(message string)
}
