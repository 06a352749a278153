package api

import (
	"fmt"
	"net/http"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/export"
)

func writeCSV(w http.ResponseWriter, rep export.Report) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rep.CSV))
}

// ─── Bank ───────────────────────────────────────────────────────────────────

func (s *Server) handleBankAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.Account())
}

func (s *Server) handleBankTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.Transactions())
}

func (s *Server) handleBankStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.BankStats())
}

func (s *Server) handleBankExport(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, export.BankStatement(s.books.Account(), s.books.Transactions(), s.today()))
}

// ─── DATEV ──────────────────────────────────────────────────────────────────

func (s *Server) handleDatevEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.DatevEntries())
}

func (s *Server) handleDatevStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.DatevStats())
}

func (s *Server) handleDatevExport(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, export.DatevJournal(s.books.DatevEntries(), s.today()))
}

// ─── Lexware ────────────────────────────────────────────────────────────────

func (s *Server) handleSyncLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.SyncLog())
}

func (s *Server) handleSyncStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.books.SyncStats())
}

func (s *Server) handleSyncLogExport(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, export.LexwareSyncLog(s.books.SyncLog(), s.today()))
}

// handleRunSync records a manual sync run. There is no live Lexware
// connection; the run reports the current invoice and client counts the
// way the nightly job does.
func (s *Server) handleRunSync(w http.ResponseWriter, r *http.Request) {
	invoices := len(s.store.Invoices())
	entry := domain.SyncLogEntry{
		ID:        fmt.Sprintf("LS-%03d", len(s.books.SyncLog())+1),
		Kind:      "Rechnungen",
		Direction: domain.SyncExport,
		Timestamp: s.clock.Today().Format("2006-01-02T15:04:05"),
		Status:    domain.SyncOK,
		Details:   fmt.Sprintf("%d Rechnungen exportiert nach Lexware faktura+auftrag", invoices),
		Count:     invoices,
	}
	s.books.AppendSyncEntry(entry)
	writeJSON(w, http.StatusCreated, entry)
}

// ─── Audit ──────────────────────────────────────────────────────────────────

func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	events, err := s.db.AuditEvents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "audit log unavailable")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleAuditExport(w http.ResponseWriter, r *http.Request) {
	events, err := s.db.AuditEvents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "audit log unavailable")
		return
	}
	writeCSV(w, export.AuditLog(events, s.today()))
}
