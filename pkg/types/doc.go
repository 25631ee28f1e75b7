// Package types defines the snapshot and cause entity types, the interfaces
// the analysis core consumes (action store, notifier, worksheet), and
// standard error values for the casefile system.
// Implements: prd001-snapshot-core (entities, consumed interfaces, errors);
//
//	docs/ARCHITECTURE § Data Model.
package types
