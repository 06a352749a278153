// Package books serves the bookkeeping mirror views: the business bank
// account, the DATEV journal and the Lexware sync protocol. The rows are
// sync mirrors of external systems and only change through sync imports,
// so the service holds them directly.
package books

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

// Service answers the bank/DATEV/Lexware views.
type Service struct {
	mu      sync.Mutex
	account domain.BankAccount
	txs     []domain.BankTransaction
	datev   []domain.DatevEntry
	syncLog []domain.SyncLogEntry
}

// New builds a service over the given mirror data.
func New(account domain.BankAccount, txs []domain.BankTransaction, datev []domain.DatevEntry, syncLog []domain.SyncLogEntry) *Service {
	return &Service{
		account: account,
		txs:     append([]domain.BankTransaction(nil), txs...),
		datev:   append([]domain.DatevEntry(nil), datev...),
		syncLog: append([]domain.SyncLogEntry(nil), syncLog...),
	}
}

func (s *Service) Account() domain.BankAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

func (s *Service) Transactions() []domain.BankTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.BankTransaction(nil), s.txs...)
}

func (s *Service) DatevEntries() []domain.DatevEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.DatevEntry(nil), s.datev...)
}

func (s *Service) SyncLog() []domain.SyncLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SyncLogEntry(nil), s.syncLog...)
}

// AppendSyncEntry records a new sync run at the top of the protocol,
// newest first like the view displays it.
func (s *Service) AppendSyncEntry(e domain.SyncLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLog = append([]domain.SyncLogEntry{e}, s.syncLog...)
}

// BankStats is the header row of the bank view.
type BankStats struct {
	Inflow       decimal.Decimal `json:"eingaenge"`
	Outflow      decimal.Decimal `json:"ausgaenge"`
	Transactions int             `json:"transaktionen"`
}

// BankStats sums inflows and outflows. Outflow amounts are stored
// negative and reported as a positive sum.
func (s *Service) BankStats() BankStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := BankStats{Inflow: decimal.Zero, Outflow: decimal.Zero, Transactions: len(s.txs)}
	for _, t := range s.txs {
		switch t.Kind {
		case domain.TxInflow:
			st.Inflow = st.Inflow.Add(t.Amount)
		case domain.TxOutflow:
			st.Outflow = st.Outflow.Add(t.Amount.Abs())
		}
	}
	return st
}

// DatevStats counts journal entries per posting state.
type DatevStats struct {
	Posted int `json:"gebucht"`
	Open   int `json:"offen"`
	Faulty int `json:"fehlerhaft"`
}

func (s *Service) DatevStats() DatevStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st DatevStats
	for _, e := range s.datev {
		switch e.Status {
		case domain.BookingPosted:
			st.Posted++
		case domain.BookingOpen:
			st.Open++
		case domain.BookingFaulty:
			st.Faulty++
		}
	}
	return st
}

// SyncStats counts sync runs per outcome.
type SyncStats struct {
	OK       int `json:"ok"`
	Warnings int `json:"warnungen"`
	Failures int `json:"fehler"`
}

func (s *Service) SyncStats() SyncStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st SyncStats
	for _, e := range s.syncLog {
		switch e.Status {
		case domain.SyncOK:
			st.OK++
		case domain.SyncWarning:
			st.Warnings++
		case domain.SyncFailed:
			st.Failures++
		}
	}
	return st
}
