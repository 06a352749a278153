package store

import (
	"reflect"
	"testing"

	"github.com/ce-es/dashboard/internal/domain"
)

func newTestStore() *Store {
	s := New(Snapshot{
		Clients: []domain.Client{
			{ID: 1, Name: "Thomas Becker", Type: domain.ConsultDebt, Status: domain.ClientActive},
			{ID: 5, Name: "Sandra Klein", Type: domain.ConsultManagement, Status: domain.ClientActive},
		},
		Invoices: []domain.Invoice{
			{ID: "RE-2025-001", ClientID: 1, Amount: domain.D(850)},
			{ID: "RE-2024-048", ClientID: 5, Amount: domain.D(1200)},
		},
		Offers: []domain.Offer{
			{ID: "AN-2025-003", ClientID: 5, Amount: domain.D(4500)},
		},
		CaseFiles: []domain.CaseFile{
			{ID: 1, ClientID: 1, Name: "Akte Becker", LastUpdate: "2025-01-20"},
		},
	})
	s.SetToday(func() string { return "2025-02-05" })
	return s
}

func TestAddClientAssignsMaxPlusOne(t *testing.T) {
	s := newTestStore()
	id := s.AddClient(domain.Client{Name: "Neu", Type: domain.ConsultCoaching})
	if id != 6 {
		t.Errorf("AddClient id = %d, want 6", id)
	}
	if got := len(s.Clients()); got != 3 {
		t.Errorf("len(Clients) = %d, want 3", got)
	}
	// The incoming id is ignored even when set.
	id = s.AddClient(domain.Client{ID: 99, Name: "Noch einer"})
	if id != 7 {
		t.Errorf("AddClient id = %d, want 7", id)
	}
}

func TestUpdateClientMergesPatch(t *testing.T) {
	s := newTestStore()
	status := domain.ClientCritical
	notes := "Mahnbescheid eingegangen"
	s.UpdateClient(1, ClientPatch{Status: &status, Notes: &notes})

	c, ok := s.Client(1)
	if !ok {
		t.Fatal("Client(1) not found")
	}
	if c.Status != domain.ClientCritical {
		t.Errorf("Status = %q, want %q", c.Status, domain.ClientCritical)
	}
	if c.Notes != notes {
		t.Errorf("Notes = %q, want %q", c.Notes, notes)
	}
	if c.Name != "Thomas Becker" {
		t.Errorf("Name changed to %q, want untouched", c.Name)
	}
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.Clients()
	name := "Geist"
	s.UpdateClient(404, ClientPatch{Name: &name})
	if got := s.Clients(); !reflect.DeepEqual(got, before) {
		t.Errorf("Clients changed after update of missing id: %v", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore()
	s.DeleteClient(1)
	s.DeleteClient(1)
	s.DeleteClient(404)
	if got := len(s.Clients()); got != 1 {
		t.Fatalf("len(Clients) = %d, want 1", got)
	}
	if s.Clients()[0].ID != 5 {
		t.Errorf("remaining client id = %d, want 5", s.Clients()[0].ID)
	}
}

func TestNextInvoiceID(t *testing.T) {
	s := newTestStore()
	// Pure: repeated calls without an add return the same value. The
	// 2024 id still counts toward the numeric maximum.
	if got := s.NextInvoiceID(); got != "RE-2025-049" {
		t.Errorf("NextInvoiceID = %q, want RE-2025-049", got)
	}
	if got := s.NextInvoiceID(); got != "RE-2025-049" {
		t.Errorf("second NextInvoiceID = %q, want RE-2025-049", got)
	}
	assigned := s.AddInvoice(domain.Invoice{ClientID: 1, Amount: domain.D(500)})
	if assigned != "RE-2025-049" {
		t.Errorf("AddInvoice id = %q, want RE-2025-049", assigned)
	}
	if got := s.NextInvoiceID(); got != "RE-2025-050" {
		t.Errorf("NextInvoiceID after add = %q, want RE-2025-050", got)
	}
}

func TestNextOfferID(t *testing.T) {
	s := newTestStore()
	if got := s.NextOfferID(); got != "AN-2025-004" {
		t.Errorf("NextOfferID = %q, want AN-2025-004", got)
	}
}

func TestAddInvoiceKeepsCallerID(t *testing.T) {
	s := newTestStore()
	got := s.AddInvoice(domain.Invoice{ID: "RE-2025-100", ClientID: 1})
	if got != "RE-2025-100" {
		t.Errorf("AddInvoice id = %q, want caller id kept", got)
	}
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	s := newTestStore()
	var order []string
	s.Subscribe(func(ev Event) { order = append(order, "a:"+ev.Collection) })
	s.Subscribe(func(ev Event) { order = append(order, "b:"+ev.Collection) })

	s.AddClient(domain.Client{Name: "X"})
	want := []string{"a:clients", "b:clients"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("notification order = %v, want %v", order, want)
	}
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := newTestStore()
	var seen int
	s.Subscribe(func(Event) { seen = len(s.Clients()) })
	s.AddClient(domain.Client{Name: "X"})
	if seen != 3 {
		t.Errorf("subscriber saw %d clients, want 3 (post-mutation state)", seen)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := newTestStore()
	var calls int
	cancel := s.Subscribe(func(Event) { calls++ })
	s.AddClient(domain.Client{Name: "X"})
	cancel()
	s.AddClient(domain.Client{Name: "Y"})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestAddDocumentToFileBumpsLastUpdate(t *testing.T) {
	s := newTestStore()
	s.AddDocumentToFile(1, domain.Document{ID: "doc-1", Name: "Scan.pdf", Type: domain.DocPDF})

	files := s.CaseFiles()
	if len(files[0].Docs) != 1 {
		t.Fatalf("len(Docs) = %d, want 1", len(files[0].Docs))
	}
	if files[0].LastUpdate != "2025-02-05" {
		t.Errorf("LastUpdate = %q, want 2025-02-05", files[0].LastUpdate)
	}
}

func TestDeleteDocument(t *testing.T) {
	s := newTestStore()
	s.AddDocumentToFile(1, domain.Document{ID: "doc-1"})
	s.AddDocumentToFile(1, domain.Document{ID: "doc-2"})
	s.DeleteDocument(1, "doc-1")

	docs := s.CaseFiles()[0].Docs
	if len(docs) != 1 || docs[0].ID != "doc-2" {
		t.Errorf("Docs = %v, want only doc-2", docs)
	}
}

func TestCaseFileSnapshotIsACopy(t *testing.T) {
	s := newTestStore()
	s.AddDocumentToFile(1, domain.Document{ID: "doc-1", Name: "a"})
	files := s.CaseFiles()
	files[0].Docs[0].Name = "mutated"
	if got := s.CaseFiles()[0].Docs[0].Name; got != "a" {
		t.Errorf("store doc name = %q, caller mutation leaked through snapshot", got)
	}
}

func TestUpsertProgressReplacesExisting(t *testing.T) {
	s := newTestStore()
	s.UpsertProgress(domain.ClientProgress{ClientID: 1, Phase: domain.PhaseNegotiating})
	s.UpsertProgress(domain.ClientProgress{ClientID: 1, Phase: domain.PhaseSettlementsRunning})

	recs := s.ProgressRecords()
	if len(recs) != 1 {
		t.Fatalf("len(ProgressRecords) = %d, want 1", len(recs))
	}
	if recs[0].Phase != domain.PhaseSettlementsRunning {
		t.Errorf("Phase = %q, want %q", recs[0].Phase, domain.PhaseSettlementsRunning)
	}
}

func TestPendingAIDocIsOneShot(t *testing.T) {
	s := newTestStore()
	if got := s.TakePendingAIDoc(); got != nil {
		t.Fatalf("TakePendingAIDoc on empty slot = %v, want nil", got)
	}
	s.SetPendingAIDoc(&domain.Document{ID: "doc-9"})
	first := s.TakePendingAIDoc()
	if first == nil || first.ID != "doc-9" {
		t.Fatalf("TakePendingAIDoc = %v, want doc-9", first)
	}
	if got := s.TakePendingAIDoc(); got != nil {
		t.Errorf("second TakePendingAIDoc = %v, want nil (slot cleared)", got)
	}
}

func TestNextFormattedIDIgnoresMalformed(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty", nil, "RE-2025-001"},
		{"sequential", []string{"RE-2025-001", "RE-2025-002"}, "RE-2025-003"},
		{"cross year", []string{"RE-2024-048", "RE-2025-003"}, "RE-2025-049"},
		{"malformed skipped", []string{"RE-2025-007", "draft", "RE-2025-xyz"}, "RE-2025-008"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextFormattedID("RE-2025", tt.ids); got != tt.want {
				t.Errorf("nextFormattedID(%v) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}
