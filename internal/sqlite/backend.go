// Package sqlite implements the casefile storage backend: JSON files as the
// source of truth (snapshot.json for the single-key snapshot blob,
// actions.jsonl for the action-tracking records) with SQLite as the query
// engine rebuilt on attach.
// Implements: prd006-sqlite-store R1, R2, R4;
//
//	docs/ARCHITECTURE § SQLite Backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// Well-known file names inside the data directory.
const (
	dbFileName       = "casefile.db"
	snapshotFileName = "snapshot.json"
	actionsFileName  = "actions.jsonl"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface. The SQLite database is disposable
// and rebuilt from the JSON files on every Attach.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend: creates DataDir if needed, rebuilds the
// SQLite schema, and loads actions.jsonl into the database.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The database is a rebuildable cache; start from a fresh schema.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir

	if err := b.loadActionsJSONL(); err != nil {
		db.Close()
		return fmt.Errorf("load actions: %w", err)
	}

	b.attached = true
	return nil
}

// Detach releases backend resources. Idempotent: multiple calls succeed.
// After Detach, operations return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// SaveSnapshot persists the serialized snapshot blob under the well-known
// snapshot key, atomically.
func (b *Backend) SaveSnapshot(blob []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return writeFileAtomic(filepath.Join(b.dataDir, snapshotFileName), blob)
}

// LoadSnapshot returns the stored snapshot blob, or nil when no snapshot has
// been saved yet.
func (b *Backend) LoadSnapshot() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	blob, err := os.ReadFile(filepath.Join(b.dataDir, snapshotFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return blob, nil
}
