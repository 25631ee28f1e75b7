// Show and actions commands: snapshot overview and action listing.
// Implements: prd007-casefile-cli R5.3, R5.4.
package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a summary of the stored snapshot",
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer backend.Detach()

	session, err := loadSession(backend)
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	snap := session.Export()

	if flags.jsonMode {
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("marshal snapshot: %s", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title:        %s\n", orDash(snap.Pre.Title))
	fmt.Fprintf(out, "Schema:       v%d\n", snap.Meta.Version)
	fmt.Fprintf(out, "Saved at:     %s\n", orDash(snap.Meta.SavedAt))
	fmt.Fprintf(out, "Containment:  %s\n", orDash(snap.Ops.ContainStatus))
	fmt.Fprintf(out, "Causes:       %d\n", len(snap.Causes))
	fmt.Fprintf(out, "Evidence:     %d rows (%d eligible)\n", len(snap.Table), len(session.EligibleRows()))

	likely := "-"
	if id := session.LikelyCause(); id != "" {
		if c, err := session.Cause(id); err == nil {
			likely = fmt.Sprintf("%s (%s)", session.Summary(c, true), id)
		}
	}
	fmt.Fprintf(out, "Likely cause: %s\n", likely)
	return nil
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List actions created from this analysis",
		RunE:  runActions,
	}
}

func runActions(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer backend.Detach()

	session, err := loadSession(backend)
	if err != nil {
		return exitError(exitSysError, err.Error())
	}

	actions, err := backend.ListActions(session.AnalysisID())
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("list actions: %s", err))
	}

	if flags.jsonMode {
		out, err := json.MarshalIndent(actions, "", "  ")
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("marshal actions: %s", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATE\tOWNER\tDUE\tSUMMARY")
	for _, a := range actions {
		due := "-"
		if a.DueAt != nil {
			due = a.DueAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ActionID, a.State, orDash(a.Owner), due, a.Summary)
	}
	return w.Flush()
}

// orDash substitutes a dash for empty display values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
