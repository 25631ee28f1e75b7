// Import and export commands: round-trip a snapshot file through the
// migration engine and the store.
// Implements: prd007-casefile-cli R4; prd002-migration-engine R1 (import
// boundary).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/internal/snapshot"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a snapshot file",
		Long: `Import reads a snapshot JSON file, migrates it to the current schema,
and replaces the stored snapshot wholesale. Legacy snapshots from any prior
schema version are accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return exitError(exitUserError, fmt.Sprintf("read %s: %s", args[0], err))
	}

	snap := snapshot.Decode(blob)
	if snap == nil {
		return exitError(exitUserError, fmt.Sprintf("%s is not a snapshot payload", args[0]))
	}

	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer backend.Detach()

	out, err := snapshot.Encode(snap)
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("encode snapshot: %s", err))
	}
	if err := backend.SaveSnapshot(out); err != nil {
		return exitError(exitSysError, fmt.Sprintf("save snapshot: %s", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported snapshot (schema v%d, %d causes).\n",
		snap.Meta.Version, len(snap.Causes))
	return nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the stored snapshot to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer backend.Detach()

	session, err := loadSession(backend)
	if err != nil {
		return exitError(exitSysError, err.Error())
	}

	blob, err := snapshot.Encode(session.Export())
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("encode snapshot: %s", err))
	}
	if err := os.WriteFile(args[0], blob, 0o644); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write %s: %s", args[0], err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot to %s.\n", args[0])
	return nil
}
