// Snapshot entity: the complete persisted state of one incident-intake
// session. The JSON field names are the wire format produced by the browser
// client and must not change; legacy shapes are folded into this one by the
// migration engine.
// Implements: prd001-snapshot-core R1, R2; prd002-migration-engine R1.
package types

// SchemaVersion is the current snapshot schema version. Migration always
// stamps meta.version to this constant.
const SchemaVersion = 3

// Snapshot is the persisted unit for one analysis session. Every field is
// always present after normalization; unknown or missing input fields are
// defaulted, never left unset.
type Snapshot struct {
	Meta          Meta          `json:"meta"`
	Pre           Pre           `json:"pre"`
	Impact        Impact        `json:"impact"`
	Ops           Ops           `json:"ops"`
	Table         []EvidenceRow `json:"table"`
	Causes        []Cause       `json:"causes"`
	LikelyCauseID string        `json:"likelyCauseId"`
	Steps         Steps         `json:"steps"`
	Actions       ActionsState  `json:"actions"`
}

// Meta carries the schema version and last-save timestamp.
type Meta struct {
	Version int    `json:"version"`
	SavedAt string `json:"savedAt"`
}

// Pre is the problem-definition block of the worksheet.
type Pre struct {
	Title     string `json:"title"`
	Statement string `json:"statement"`
	Owner     string `json:"owner"`
	OpenedAt  string `json:"openedAt"`
}

// Impact is the business-impact block of the worksheet.
type Impact struct {
	Severity  string `json:"severity"`
	Affected  string `json:"affected"`
	Business  string `json:"business"`
	SLABreach bool   `json:"slaBreach"`
}

// Containment status values (prd001-snapshot-core R2.3). The legacy
// three-value scheme (none, mitigation, resolved) maps onto these; an
// unrecognized value becomes the empty string rather than a guess, so
// migration never invents incident state.
const (
	ContainNotStarted = "not_started"
	ContainAssessing  = "assessing"
	ContainContaining = "containing"
	ContainStabilized = "stabilized"
	ContainMonitoring = "monitoring"
	ContainLifted     = "lifted"
	ContainVerified   = "verified"
)

// ValidContainStatuses is the set of recognized containment status values.
var ValidContainStatuses = map[string]bool{
	ContainNotStarted: true,
	ContainAssessing:  true,
	ContainContaining: true,
	ContainStabilized: true,
	ContainMonitoring: true,
	ContainLifted:     true,
	ContainVerified:   true,
}

// Ops is the operational-response block: containment state, communication
// cadence, and the communications log.
type Ops struct {
	ContainStatus string     `json:"containStatus"`
	CommCadence   string     `json:"commCadence"`
	CommChannel   string     `json:"commChannel"`
	NextUpdateAt  string     `json:"nextUpdateAt"`
	LogOpen       bool       `json:"logOpen"`
	Log           []CommNote `json:"log"`
}

// CommNote is one entry in the communications log.
type CommNote struct {
	At   string `json:"at"`
	Text string `json:"text"`
}

// Steps is the persisted state of the steps checklist feature.
type Steps struct {
	Items      []StepItem `json:"items"`
	DrawerOpen bool       `json:"drawerOpen"`
}

// StepItem is one checklist entry.
type StepItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// ActionsState is the snapshot's view of the external action-tracking store:
// the analysis it is keyed by and a cached copy of its items.
type ActionsState struct {
	AnalysisID string   `json:"analysisId"`
	Items      []Action `json:"items"`
}
