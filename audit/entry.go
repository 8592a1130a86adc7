// Package audit records who changed what in the caregiver record system.
//
// Entries are append-only: the recorder writes exactly one entry per
// mutation and nothing in this package updates or deletes one afterwards.
// Sensitive keys in the before/after snapshots are redacted before anything
// touches durable storage, so the audit trail can be read by operators
// without re-exposing the data the rest of the module exists to protect.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action identifies the kind of mutation an entry describes.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entry is the caller-facing description of one mutation. Before and After
// are plaintext snapshots of the record around the change; the recorder
// redacts them before storage. Either may be nil (a CREATE has no before, a
// DELETE no after).
type Entry struct {
	Actor         string
	Action        Action
	Table         string
	RecordID      string
	Before        map[string]any
	After         map[string]any
	OriginAddress string
	OriginClient  string
}

// Record is the stored form of an entry: identified, timestamped, and with
// the snapshots already redacted and serialized. Nil snapshots stay nil all
// the way into storage (SQL NULL, not "{}").
type Record struct {
	ID            uuid.UUID
	Actor         string
	Action        Action
	Table         string
	RecordID      string
	Before        json.RawMessage
	After         json.RawMessage
	OriginAddress string
	OriginClient  string
	RecordedAt    time.Time
}
