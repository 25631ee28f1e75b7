// Shared helpers for casefile CLI commands.
// Implements: prd007-casefile-cli R3 (backend attachment), R8 (output modes).
package cli

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/casefile/internal/analysis"
	"github.com/mesh-intelligence/casefile/internal/paths"
	"github.com/mesh-intelligence/casefile/internal/snapshot"
	"github.com/mesh-intelligence/casefile/internal/sqlite"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// resolveDirs returns the effective config and data directories, honoring
// flags, environment, and config.yaml.
func resolveDirs() (configDir, dataDir string, err error) {
	configDir, err = paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", "", fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return "", "", err
	}

	dataDir, err = paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return "", "", fmt.Errorf("resolve data dir: %w", err)
	}
	return configDir, dataDir, nil
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	_, dataDir, err := resolveDirs()
	if err != nil {
		return nil, err
	}

	backend := sqlite.NewBackend()
	err = backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	})
	if err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// loadSession loads the stored snapshot (migrating it to the current
// schema) and wraps it in a session backed by the attached store.
func loadSession(backend *sqlite.Backend) (*analysis.Session, error) {
	blob, err := backend.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap *types.Snapshot
	if blob != nil {
		snap = snapshot.Decode(blob)
	}

	return analysis.NewSession(snap, analysis.Deps{
		Store:    backend,
		Notifier: printNotifier{},
	}), nil
}

// saveSession persists the session's snapshot through the backend.
func saveSession(backend *sqlite.Backend, session *analysis.Session) error {
	blob, err := snapshot.Encode(session.Export())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := backend.SaveSnapshot(blob); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// printNotifier writes notifications to stderr, the CLI's stand-in for the
// browser client's toast sink.
type printNotifier struct{}

func (printNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
}
