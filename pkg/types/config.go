// Config for backend selection and storage locations.
// Implements: prd006-sqlite-store R1; prd008-configuration-directories R1.
package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors (prd006-sqlite-store R1.3).
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// Store is the storage lifecycle interface. Callers attach to a backend,
// save/load the snapshot blob and actions, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// SaveSnapshot persists the serialized snapshot blob under the
	// well-known snapshot key.
	SaveSnapshot(blob []byte) error

	// LoadSnapshot returns the stored snapshot blob, or nil when no
	// snapshot has been saved yet.
	LoadSnapshot() ([]byte, error)

	ActionStore
}

// Store lifecycle errors (prd006-sqlite-store R1.4).
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
