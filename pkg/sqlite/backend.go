// Package sqlite provides the public API for the SQLite casefile backend.
// This package exposes the factory function for creating backends while
// keeping implementation details internal.
//
// Implements: prd006-sqlite-store R1 (backend factory);
//
//	docs/ARCHITECTURE § Public API.
package sqlite

import (
	"github.com/mesh-intelligence/casefile/internal/sqlite"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".casefile-db",
//	})
//	defer store.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
