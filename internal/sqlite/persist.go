package sqlite

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ce-es/dashboard/internal/store"
)

const snapshotCollection = "entities"

// Persister mirrors the store into the database. It subscribes to store
// mutations and writes the full snapshot through on each one; the
// dataset is a few hundred rows, so replacing it wholesale is cheaper
// than per-row diffing.
type Persister struct {
	db    *DB
	store *store.Store
}

// NewPersister wires a persister to the store.
func NewPersister(db *DB, s *store.Store) *Persister {
	return &Persister{db: db, store: s}
}

// Persist writes the current snapshot.
func (p *Persister) Persist() error {
	payload, err := json.Marshal(p.store.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return p.db.SaveSnapshot(snapshotCollection, payload)
}

// Attach subscribes the persister to store mutations and returns the
// unsubscribe function. Persistence failures must not break the mutating
// request, so they are reported to onError instead of propagating.
func (p *Persister) Attach(onError func(error)) func() {
	return p.store.Subscribe(func(store.Event) {
		if err := p.Persist(); err != nil && onError != nil {
			onError(err)
		}
	})
}

// Restore loads the last persisted snapshot. ok is false on a fresh
// database, in which case the caller seeds the store instead.
func (p *Persister) Restore() (store.Snapshot, bool, error) {
	return RestoreSnapshot(p.db)
}

// RestoreSnapshot loads the last persisted snapshot straight from the
// database, for callers that decide restore-or-seed before the store
// exists.
func RestoreSnapshot(db *DB) (store.Snapshot, bool, error) {
	payload, ok, err := db.LoadSnapshot(snapshotCollection)
	if err != nil || !ok {
		return store.Snapshot{}, false, err
	}
	var snap store.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, true, nil
}
