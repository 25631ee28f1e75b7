// Init command: create configuration and data directories and initialize
// the storage backend.
// Implements: prd007-casefile-cli R2.1; prd008-configuration-directories R4.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize casefile storage",
		Long:  "Create configuration and data directories, then initialize the storage backend.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("initialize storage: %s", err))
	}
	defer backend.Detach()

	configDir, dataDir, err := resolveDirs()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized casefile storage.\nconfig: %s\ndata:   %s\n", configDir, dataDir)
	return nil
}
