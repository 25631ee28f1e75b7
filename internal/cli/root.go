// Package cli implements the casefile command-line interface.
// Implements: prd007-casefile-cli (R1: root command structure, R6: global
// flags, R7: exit codes);
//
//	docs/ARCHITECTURE § CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the CLI version reported by the version command.
const Version = "0.3.0"

// Exit codes (prd007-casefile-cli R7).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "casefile" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "casefile",
		Short: "Structured incident root-cause intake",
		Long: "Casefile manages the persisted state of a structured incident\n" +
			"root-cause analysis: versioned snapshots, possible-cause decisions,\n" +
			"and conversion of planned tests into tracked actions.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	// Global persistent flags (prd007-casefile-cli R6).
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .casefile)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .casefile-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newCausesCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newActionsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
