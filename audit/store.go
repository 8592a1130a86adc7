package audit

import (
	"context"
	"errors"
	"sync"
)

// Store is a durable append-only sink for audit records. Implementations
// must treat Append as atomic: either the whole record lands or the call
// fails. Nothing in this package ever updates or deletes an appended record.
type Store interface {
	Append(ctx context.Context, rec Record) error
}

// MemoryStore keeps records in memory. Intended for tests and local
// development; it lets the recorder be exercised without a database.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of everything appended so far.
func (s *MemoryStore) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// MultiStore fans one append out to several stores, so the trail can land in
// a local database and an off-box archive at the same time. Every store sees
// every record; errors are joined so the recorder logs all failures at once.
type MultiStore struct {
	stores []Store
}

// NewMultiStore wraps the given stores.
func NewMultiStore(stores ...Store) *MultiStore {
	return &MultiStore{stores: stores}
}

func (s *MultiStore) Append(ctx context.Context, rec Record) error {
	var errs []error
	for _, store := range s.stores {
		if err := store.Append(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
