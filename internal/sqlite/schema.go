// Schema DDL for the rebuildable query engine.
// Implements: prd006-sqlite-store R2.1.
package sqlite

// schemaSQL creates the actions table. Timestamps are stored as RFC 3339
// text, matching the JSONL record format.
const schemaSQL = `CREATE TABLE actions (
    action_id TEXT PRIMARY KEY,
    analysis_id TEXT NOT NULL,
    summary TEXT NOT NULL,
    detail TEXT,
    owner TEXT,
    due_at TEXT,
    hypothesis_id TEXT,
    state TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX idx_actions_analysis ON actions(analysis_id, created_at);
`
