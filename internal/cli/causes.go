// Causes command: list causes with their computed states and preview
// summaries.
// Implements: prd007-casefile-cli R5.1; prd003-cause-decisions R3.
package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/internal/analysis"
)

func newCausesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "causes",
		Short: "List possible causes with their decision states",
		Long: `Causes lists every possible cause in the stored snapshot, with its
computed decision state, preview summary, assumption badge, and linked
action count.

Example:
  casefile causes
  casefile causes --json`,
		RunE: runCauses,
	}
}

// causeRow is the JSON output shape for one cause.
type causeRow struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	Summary     string `json:"summary"`
	Likely      bool   `json:"likely"`
	Assumptions int    `json:"assumptions"`
	Actions     int    `json:"actions"`
}

func runCauses(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer backend.Detach()

	session, err := loadSession(backend)
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	session.RefreshActionCounts()

	rows := make([]causeRow, 0, len(session.Causes()))
	for _, c := range session.Causes() {
		rows = append(rows, causeRow{
			ID:          c.ID,
			State:       string(session.State(c)),
			Summary:     session.Summary(c, true),
			Likely:      session.LikelyCause() == c.ID,
			Assumptions: analysis.CountAssumptions(c),
			Actions:     session.ActionCount(c.ID),
		})
	}

	if flags.jsonMode {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("marshal causes: %s", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATE\tLIKELY\tACTIONS\tSUMMARY")
	for _, row := range rows {
		likely := ""
		if row.Likely {
			likely = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", row.ID, row.State, likely, row.Actions, row.Summary)
	}
	return w.Flush()
}
