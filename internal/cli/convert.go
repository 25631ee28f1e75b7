// Convert command: promote a conditional cause's planned test into an
// action.
// Implements: prd007-casefile-cli R5.2; prd005-action-bridge R1-R3.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <cause-id>",
		Short: "Convert a conditional cause's planned test into an action",
		Long: `Convert creates a task in the action store from the cause's planned
test. The cause must be conditional: assumption recorded and test text,
owner, and ETA all present.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer backend.Detach()

	session, err := loadSession(backend)
	if err != nil {
		return exitError(exitSysError, err.Error())
	}

	action, err := session.Convert(args[0])
	switch {
	case errors.Is(err, types.ErrCauseNotFound):
		return exitError(exitUserError, fmt.Sprintf("no cause with ID %s", args[0]))
	case errors.Is(err, types.ErrNotConditional):
		return exitError(exitUserError, "cause is not conditional with a complete test plan")
	case err != nil:
		return exitError(exitSysError, err.Error())
	}

	if err := saveSession(backend, session); err != nil {
		return exitError(exitSysError, err.Error())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created action %s (owner %s).\n", action.ActionID, action.Owner)
	return nil
}
