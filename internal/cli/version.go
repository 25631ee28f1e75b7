// Implements: prd007-casefile-cli R2.2 (version command).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/casefile"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the casefile version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "casefile v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
