// Package integration exercises the casefile core end to end: storage
// backend, snapshot migration, decision engine, and the action bridge,
// wired together the way the CLI wires them.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/casefile/internal/analysis"
	"github.com/mesh-intelligence/casefile/internal/sqlite"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// setupBackend creates a backend attached to an isolated temp directory.
// Each test gets its own data directory for isolation.
func setupBackend(t *testing.T) (*sqlite.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { _ = b.Detach() })
	return b, dir
}

// quietNotifier drops notifications; integration tests assert on state, not
// toasts.
type quietNotifier struct{}

func (quietNotifier) Notify(string) {}

// removeDatabaseFile deletes the rebuildable SQLite file from a data
// directory.
func removeDatabaseFile(t *testing.T, dir string) {
	t.Helper()
	if err := os.Remove(filepath.Join(dir, "casefile.db")); err != nil {
		t.Fatalf("remove database file: %v", err)
	}
}

// newSessionWith wires a session to the backend the way the CLI does.
func newSessionWith(b *sqlite.Backend, snap *types.Snapshot) *analysis.Session {
	return analysis.NewSession(snap, analysis.Deps{
		Store:    b,
		Notifier: quietNotifier{},
	})
}
