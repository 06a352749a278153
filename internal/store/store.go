// Package store is the single source of truth for the mutable entity
// collections. It is an explicitly constructed object with its own observer
// registry — no package-level state. Every mutation notifies subscribers
// synchronously, in registration order, before the mutating call returns.
//
// The store validates nothing; callers validate before mutating. Updating
// or deleting a nonexistent id is a silent no-op, which keeps delete
// idempotent (a deliberate compatibility choice with the reference
// behavior).
package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ce-es/dashboard/internal/domain"
)

// Op is the kind of mutation an event reports.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Event describes one store mutation for subscribers.
type Event struct {
	Collection string
	Op         Op
	ID         string
}

// Subscriber receives mutation events. Called synchronously while the
// store lock is NOT held, so subscribers may read the store.
type Subscriber func(Event)

// Snapshot is a full copy of every collection, used for seeding,
// persistence and the assistant context builder.
type Snapshot struct {
	Clients      []domain.Client
	Appointments []domain.Appointment
	Invoices     []domain.Invoice
	Offers       []domain.Offer
	CaseFiles    []domain.CaseFile
	Creditors    []domain.Creditor
	Progress     []domain.ClientProgress
	Deadlines    []domain.Deadline
}

// Store holds the entity collections. Mutations are serialized by a
// mutex; Go HTTP handlers run concurrently even though the reference
// design was a single-threaded event loop.
type Store struct {
	mu           sync.Mutex
	clients      []domain.Client
	appointments []domain.Appointment
	invoices     []domain.Invoice
	offers       []domain.Offer
	caseFiles    []domain.CaseFile
	creditors    []domain.Creditor
	progress     []domain.ClientProgress
	deadlines    []domain.Deadline

	subMu sync.Mutex
	subs  []Subscriber

	pendingDoc *domain.Document

	// today returns the current ISO date for lastUpdate stamps.
	today func() string
}

// New constructs a store preloaded with the given snapshot.
func New(initial Snapshot) *Store {
	s := &Store{today: func() string { return time.Now().Format(time.DateOnly) }}
	s.clients = append(s.clients, initial.Clients...)
	s.appointments = append(s.appointments, initial.Appointments...)
	s.invoices = append(s.invoices, initial.Invoices...)
	s.offers = append(s.offers, initial.Offers...)
	for _, cf := range initial.CaseFiles {
		cf.Docs = append([]domain.Document(nil), cf.Docs...)
		s.caseFiles = append(s.caseFiles, cf)
	}
	s.creditors = append(s.creditors, initial.Creditors...)
	s.progress = append(s.progress, initial.Progress...)
	s.deadlines = append(s.deadlines, initial.Deadlines...)
	return s
}

// SetToday overrides the date source for lastUpdate stamps. Tests and the
// demo deployment pin it to the fixed reference date.
func (s *Store) SetToday(fn func() string) { s.today = fn }

// Subscribe registers fn for mutation events and returns an unsubscribe
// function. Notification order is registration order.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if idx < len(s.subs) {
			s.subs[idx] = nil
		}
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	subs := append([]Subscriber(nil), s.subs...)
	s.subMu.Unlock()
	for _, fn := range subs {
		if fn != nil {
			fn(ev)
		}
	}
}

// Snapshot returns a copy of all collections at this instant.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Clients:      append([]domain.Client(nil), s.clients...),
		Appointments: append([]domain.Appointment(nil), s.appointments...),
		Invoices:     append([]domain.Invoice(nil), s.invoices...),
		Offers:       append([]domain.Offer(nil), s.offers...),
		Creditors:    append([]domain.Creditor(nil), s.creditors...),
		Progress:     append([]domain.ClientProgress(nil), s.progress...),
		Deadlines:    append([]domain.Deadline(nil), s.deadlines...),
	}
	for _, cf := range s.caseFiles {
		cf.Docs = append([]domain.Document(nil), cf.Docs...)
		snap.CaseFiles = append(snap.CaseFiles, cf)
	}
	return snap
}

// ─── Clients ────────────────────────────────────────────────────────────────

// Clients returns an insertion-ordered snapshot of the client collection.
func (s *Store) Clients() []domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Client(nil), s.clients...)
}

// Client returns the client with the given id.
func (s *Store) Client(id int) (domain.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

// AddClient appends a client, assigning id = max(existing)+1.
func (s *Store) AddClient(c domain.Client) int {
	s.mu.Lock()
	c.ID = nextNumericID(clientIDs(s.clients))
	s.clients = append(s.clients, c)
	s.mu.Unlock()
	s.notify(Event{Collection: "clients", Op: OpAdd, ID: strconv.Itoa(c.ID)})
	return c.ID
}

// UpdateClient merges the patch into the client with the given id.
// Unknown ids are silently ignored.
func (s *Store) UpdateClient(id int, p ClientPatch) {
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			p.apply(&s.clients[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "clients", Op: OpUpdate, ID: strconv.Itoa(id)})
}

// DeleteClient removes the client outright. Dependent appointments,
// invoices, case files and creditors are NOT cascaded; ledger.Check
// reports the resulting orphans.
func (s *Store) DeleteClient(id int) {
	s.mu.Lock()
	s.clients = deleteWhere(s.clients, func(c domain.Client) bool { return c.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "clients", Op: OpDelete, ID: strconv.Itoa(id)})
}

// ─── Appointments ───────────────────────────────────────────────────────────

func (s *Store) Appointments() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Appointment(nil), s.appointments...)
}

func (s *Store) AddAppointment(a domain.Appointment) int {
	s.mu.Lock()
	a.ID = nextNumericID(appointmentIDs(s.appointments))
	s.appointments = append(s.appointments, a)
	s.mu.Unlock()
	s.notify(Event{Collection: "appointments", Op: OpAdd, ID: strconv.Itoa(a.ID)})
	return a.ID
}

func (s *Store) UpdateAppointment(id int, p AppointmentPatch) {
	s.mu.Lock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			p.apply(&s.appointments[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "appointments", Op: OpUpdate, ID: strconv.Itoa(id)})
}

func (s *Store) DeleteAppointment(id int) {
	s.mu.Lock()
	s.appointments = deleteWhere(s.appointments, func(a domain.Appointment) bool { return a.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "appointments", Op: OpDelete, ID: strconv.Itoa(id)})
}

// ─── Invoices / Offers ──────────────────────────────────────────────────────

func (s *Store) Invoices() []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Invoice(nil), s.invoices...)
}

// AddInvoice appends an invoice. An empty id is replaced with the next
// formatted sequence id.
func (s *Store) AddInvoice(inv domain.Invoice) string {
	s.mu.Lock()
	if inv.ID == "" {
		inv.ID = nextFormattedID("RE-2025", invoiceIDs(s.invoices))
	}
	s.invoices = append(s.invoices, inv)
	s.mu.Unlock()
	s.notify(Event{Collection: "invoices", Op: OpAdd, ID: inv.ID})
	return inv.ID
}

func (s *Store) UpdateInvoice(id string, p InvoicePatch) {
	s.mu.Lock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			p.apply(&s.invoices[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "invoices", Op: OpUpdate, ID: id})
}

func (s *Store) DeleteInvoice(id string) {
	s.mu.Lock()
	s.invoices = deleteWhere(s.invoices, func(i domain.Invoice) bool { return i.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "invoices", Op: OpDelete, ID: id})
}

func (s *Store) Offers() []domain.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Offer(nil), s.offers...)
}

func (s *Store) AddOffer(o domain.Offer) string {
	s.mu.Lock()
	if o.ID == "" {
		o.ID = nextFormattedID("AN-2025", offerIDs(s.offers))
	}
	s.offers = append(s.offers, o)
	s.mu.Unlock()
	s.notify(Event{Collection: "offers", Op: OpAdd, ID: o.ID})
	return o.ID
}

func (s *Store) UpdateOffer(id string, p OfferPatch) {
	s.mu.Lock()
	for i := range s.offers {
		if s.offers[i].ID == id {
			p.apply(&s.offers[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "offers", Op: OpUpdate, ID: id})
}

func (s *Store) DeleteOffer(id string) {
	s.mu.Lock()
	s.offers = deleteWhere(s.offers, func(o domain.Offer) bool { return o.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "offers", Op: OpDelete, ID: id})
}

// NextInvoiceID previews the id the next AddInvoice would assign. Pure:
// calling it twice without an intervening add returns the same value.
func (s *Store) NextInvoiceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nextFormattedID("RE-2025", invoiceIDs(s.invoices))
}

// NextOfferID previews the id the next AddOffer would assign.
func (s *Store) NextOfferID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nextFormattedID("AN-2025", offerIDs(s.offers))
}

// ─── Case Files / Documents ─────────────────────────────────────────────────

func (s *Store) CaseFiles() []domain.CaseFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CaseFile, 0, len(s.caseFiles))
	for _, cf := range s.caseFiles {
		cf.Docs = append([]domain.Document(nil), cf.Docs...)
		out = append(out, cf)
	}
	return out
}

func (s *Store) AddCaseFile(cf domain.CaseFile) int {
	s.mu.Lock()
	cf.ID = nextNumericID(caseFileIDs(s.caseFiles))
	cf.Docs = append([]domain.Document(nil), cf.Docs...)
	s.caseFiles = append(s.caseFiles, cf)
	s.mu.Unlock()
	s.notify(Event{Collection: "caseFiles", Op: OpAdd, ID: strconv.Itoa(cf.ID)})
	return cf.ID
}

// AddDocumentToFile appends a document to a case file and bumps the
// file's lastUpdate stamp to today.
func (s *Store) AddDocumentToFile(fileID int, doc domain.Document) {
	s.mu.Lock()
	for i := range s.caseFiles {
		if s.caseFiles[i].ID == fileID {
			s.caseFiles[i].Docs = append(s.caseFiles[i].Docs, doc)
			s.caseFiles[i].LastUpdate = s.today()
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "caseFiles", Op: OpUpdate, ID: strconv.Itoa(fileID)})
}

func (s *Store) DeleteDocument(fileID int, docID string) {
	s.mu.Lock()
	for i := range s.caseFiles {
		if s.caseFiles[i].ID == fileID {
			s.caseFiles[i].Docs = deleteWhere(s.caseFiles[i].Docs, func(d domain.Document) bool { return d.ID == docID })
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "caseFiles", Op: OpUpdate, ID: strconv.Itoa(fileID)})
}

func (s *Store) DeleteCaseFile(id int) {
	s.mu.Lock()
	s.caseFiles = deleteWhere(s.caseFiles, func(cf domain.CaseFile) bool { return cf.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "caseFiles", Op: OpDelete, ID: strconv.Itoa(id)})
}

// ─── Creditors / Progress / Deadlines ───────────────────────────────────────

func (s *Store) Creditors() []domain.Creditor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Creditor(nil), s.creditors...)
}

func (s *Store) AddCreditor(c domain.Creditor) string {
	s.mu.Lock()
	s.creditors = append(s.creditors, c)
	s.mu.Unlock()
	s.notify(Event{Collection: "creditors", Op: OpAdd, ID: c.ID})
	return c.ID
}

func (s *Store) UpdateCreditor(id string, p CreditorPatch) {
	s.mu.Lock()
	for i := range s.creditors {
		if s.creditors[i].ID == id {
			p.apply(&s.creditors[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "creditors", Op: OpUpdate, ID: id})
}

func (s *Store) DeleteCreditor(id string) {
	s.mu.Lock()
	s.creditors = deleteWhere(s.creditors, func(c domain.Creditor) bool { return c.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "creditors", Op: OpDelete, ID: id})
}

func (s *Store) ProgressRecords() []domain.ClientProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ClientProgress(nil), s.progress...)
}

// UpsertProgress replaces the progress record for the client, or appends
// one if none exists. A client has at most one progress record.
func (s *Store) UpsertProgress(p domain.ClientProgress) {
	s.mu.Lock()
	replaced := false
	for i := range s.progress {
		if s.progress[i].ClientID == p.ClientID {
			s.progress[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.progress = append(s.progress, p)
	}
	s.mu.Unlock()
	op := OpUpdate
	if !replaced {
		op = OpAdd
	}
	s.notify(Event{Collection: "progress", Op: op, ID: strconv.Itoa(p.ClientID)})
}

func (s *Store) DeleteProgress(clientID int) {
	s.mu.Lock()
	s.progress = deleteWhere(s.progress, func(p domain.ClientProgress) bool { return p.ClientID == clientID })
	s.mu.Unlock()
	s.notify(Event{Collection: "progress", Op: OpDelete, ID: strconv.Itoa(clientID)})
}

func (s *Store) Deadlines() []domain.Deadline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Deadline(nil), s.deadlines...)
}

func (s *Store) AddDeadline(d domain.Deadline) string {
	s.mu.Lock()
	s.deadlines = append(s.deadlines, d)
	s.mu.Unlock()
	s.notify(Event{Collection: "deadlines", Op: OpAdd, ID: d.ID})
	return d.ID
}

func (s *Store) UpdateDeadline(id string, p DeadlinePatch) {
	s.mu.Lock()
	for i := range s.deadlines {
		if s.deadlines[i].ID == id {
			p.apply(&s.deadlines[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify(Event{Collection: "deadlines", Op: OpUpdate, ID: id})
}

func (s *Store) DeleteDeadline(id string) {
	s.mu.Lock()
	s.deadlines = deleteWhere(s.deadlines, func(d domain.Deadline) bool { return d.ID == id })
	s.mu.Unlock()
	s.notify(Event{Collection: "deadlines", Op: OpDelete, ID: id})
}

// ─── Pending AI Document ────────────────────────────────────────────────────
// One-shot handoff slot for "analyze this document" navigation from the
// files view to the assistant. Reading clears it.

func (s *Store) SetPendingAIDoc(doc *domain.Document) {
	s.mu.Lock()
	s.pendingDoc = doc
	s.mu.Unlock()
}

func (s *Store) TakePendingAIDoc() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.pendingDoc
	s.pendingDoc = nil
	return d
}

// ─── ID Helpers ─────────────────────────────────────────────────────────────

func nextNumericID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// nextFormattedID parses the numeric suffix of every existing id and
// returns "<prefix>-%03d" with the maximum plus one. Malformed ids count
// as zero.
func nextFormattedID(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		idx := strings.LastIndex(id, "-")
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(id[idx+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}

func clientIDs(cs []domain.Client) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func appointmentIDs(as []domain.Appointment) []int {
	out := make([]int, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func caseFileIDs(cfs []domain.CaseFile) []int {
	out := make([]int, len(cfs))
	for i, cf := range cfs {
		out[i] = cf.ID
	}
	return out
}

func invoiceIDs(is []domain.Invoice) []string {
	out := make([]string, len(is))
	for i, inv := range is {
		out[i] = inv.ID
	}
	return out
}

func offerIDs(os []domain.Offer) []string {
	out := make([]string, len(os))
	for i, o := range os {
		out[i] = o.ID
	}
	return out
}

func deleteWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}
