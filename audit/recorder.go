package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultAppendTimeout bounds each storage append so a slow audit backend
// cannot stall the business mutation that triggered it.
const DefaultAppendTimeout = 5 * time.Second

// Recorder redacts and persists audit entries. Record never returns an
// error: availability of the primary operation outranks completeness of the
// audit log, so append failures are logged locally and swallowed. A Recorder
// is safe for concurrent use; every call produces one independent entry.
type Recorder struct {
	store   Store
	logger  *slog.Logger
	timeout time.Duration
	clock   func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLogger sets the logger used for swallowed append failures.
func WithLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) { r.logger = logger }
}

// WithAppendTimeout overrides the per-append timeout.
func WithAppendTimeout(d time.Duration) RecorderOption {
	return func(r *Recorder) { r.timeout = d }
}

// withClock fixes the timestamp source for tests.
func withClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.clock = now }
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:   store,
		logger:  slog.Default(),
		timeout: DefaultAppendTimeout,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record redacts the entry's snapshots and appends one record to the store.
// Failures never propagate to the caller and never roll back the mutation
// being audited.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if err := r.record(ctx, entry); err != nil {
		r.logger.Error("audit append failed",
			"table", entry.Table,
			"record_id", entry.RecordID,
			"action", string(entry.Action),
			"actor", entry.Actor,
			"error", err,
		)
	}
}

func (r *Recorder) record(ctx context.Context, entry Entry) error {
	rec := Record{
		ID:            uuid.New(),
		Actor:         entry.Actor,
		Action:        entry.Action,
		Table:         entry.Table,
		RecordID:      entry.RecordID,
		OriginAddress: entry.OriginAddress,
		OriginClient:  entry.OriginClient,
		RecordedAt:    r.clock().UTC(),
	}

	var err error
	if rec.Before, err = marshalRedacted(entry.Before); err != nil {
		return fmt.Errorf("serializing before state: %w", err)
	}
	if rec.After, err = marshalRedacted(entry.After); err != nil {
		return fmt.Errorf("serializing after state: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.store.Append(ctx, rec); err != nil {
		return fmt.Errorf("appending to store: %w", err)
	}
	return nil
}

// marshalRedacted redacts and serializes one snapshot. A nil snapshot stays
// nil so the store can keep NULL and "empty object" distinct.
func marshalRedacted(snapshot map[string]any) (json.RawMessage, error) {
	if snapshot == nil {
		return nil, nil
	}
	return json.Marshal(Redact(snapshot))
}
