package sqlite

import (
	"testing"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/seed"
	"github.com/ce-es/dashboard/internal/store"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := newTestDB(t)

	if _, ok, err := db.LoadSnapshot("entities"); err != nil || ok {
		t.Fatalf("LoadSnapshot on fresh db = ok %v, err %v; want miss", ok, err)
	}
	if err := db.SaveSnapshot("entities", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveSnapshot("entities", []byte(`{"a":2}`)); err != nil {
		t.Fatal(err)
	}
	payload, ok, err := db.LoadSnapshot("entities")
	if err != nil || !ok {
		t.Fatalf("LoadSnapshot = ok %v, err %v", ok, err)
	}
	if string(payload) != `{"a":2}` {
		t.Errorf("payload = %s, want latest version", payload)
	}
}

func TestPersisterWriteThroughAndRestore(t *testing.T) {
	db := newTestDB(t)
	s := store.New(store.Snapshot{
		Clients:   seed.Clients(),
		Creditors: seed.Creditors(),
		Deadlines: seed.Deadlines(),
	})
	p := NewPersister(db, s)

	detach := p.Attach(func(err error) { t.Errorf("persist error: %v", err) })
	defer detach()

	// A mutation flows through the subscription into the database.
	id := s.AddClient(domain.Client{Name: "Neu", Type: domain.ConsultCoaching, Status: domain.ClientActive})

	restored, ok, err := p.Restore()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Restore found no snapshot after mutation")
	}
	if len(restored.Clients) != len(seed.Clients())+1 {
		t.Errorf("restored clients = %d, want %d", len(restored.Clients), len(seed.Clients())+1)
	}
	found := false
	for _, c := range restored.Clients {
		if c.ID == id && c.Name == "Neu" {
			found = true
		}
	}
	if !found {
		t.Error("restored snapshot missing the added client")
	}
	if len(restored.Creditors) != len(seed.Creditors()) {
		t.Errorf("restored creditors = %d, want %d", len(restored.Creditors), len(seed.Creditors()))
	}
}

func TestPersistPreservesDecimals(t *testing.T) {
	db := newTestDB(t)
	s := store.New(store.Snapshot{Creditors: []domain.Creditor{
		{ID: "GL-X", ClientID: 1, OriginalAmount: domain.D(12500), CurrentAmount: domain.D(8300)},
	}})
	p := NewPersister(db, s)
	if err := p.Persist(); err != nil {
		t.Fatal(err)
	}
	restored, ok, err := p.Restore()
	if err != nil || !ok {
		t.Fatalf("Restore = ok %v, err %v", ok, err)
	}
	if !restored.Creditors[0].OriginalAmount.Equal(domain.D(12500)) {
		t.Errorf("OriginalAmount = %s, want 12500", restored.Creditors[0].OriginalAmount)
	}
}

func TestAuditEvents(t *testing.T) {
	db := newTestDB(t)
	for _, e := range seed.AuditLog() {
		if err := db.AppendAuditEvent(e); err != nil {
			t.Fatal(err)
		}
	}
	// Replaying the seed must not duplicate rows.
	if err := db.AppendAuditEvent(seed.AuditLog()[0]); err != nil {
		t.Fatal(err)
	}

	events, err := db.AuditEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != len(seed.AuditLog()) {
		t.Fatalf("len(AuditEvents) = %d, want %d", len(events), len(seed.AuditLog()))
	}
	// Newest first.
	for i := 1; i < len(events); i++ {
		if events[i-1].Timestamp < events[i].Timestamp {
			t.Fatalf("events out of order at %d: %s < %s", i, events[i-1].Timestamp, events[i].Timestamp)
		}
	}
}
