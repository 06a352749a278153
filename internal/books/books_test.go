package books

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/seed"
)

func dec(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func newTestService() *Service {
	return New(domain.BankAccount{IBAN: "DE89 6205 0000 0001 2345 78"},
		[]domain.BankTransaction{
			{ID: "BT-01", Amount: dec(850), Kind: domain.TxInflow},
			{ID: "BT-02", Amount: dec(-1850), Kind: domain.TxOutflow},
			{ID: "BT-03", Amount: dec(2400), Kind: domain.TxInflow},
		},
		[]domain.DatevEntry{
			{ID: "BU-1", Status: domain.BookingPosted},
			{ID: "BU-2", Status: domain.BookingPosted},
			{ID: "BU-3", Status: domain.BookingOpen},
			{ID: "BU-4", Status: domain.BookingFaulty},
		},
		[]domain.SyncLogEntry{
			{ID: "LS-001", Status: domain.SyncOK},
			{ID: "LS-002", Status: domain.SyncWarning},
			{ID: "LS-003", Status: domain.SyncFailed},
			{ID: "LS-004", Status: domain.SyncOK},
		})
}

func TestBankStats(t *testing.T) {
	st := newTestService().BankStats()
	if !st.Inflow.Equal(dec(3250)) {
		t.Errorf("Inflow = %s, want 3250", st.Inflow)
	}
	if !st.Outflow.Equal(dec(1850)) {
		t.Errorf("Outflow = %s, want 1850 (positive)", st.Outflow)
	}
	if st.Transactions != 3 {
		t.Errorf("Transactions = %d, want 3", st.Transactions)
	}
}

func TestDatevStats(t *testing.T) {
	st := newTestService().DatevStats()
	if st.Posted != 2 || st.Open != 1 || st.Faulty != 1 {
		t.Errorf("DatevStats = %+v, want 2/1/1", st)
	}
}

func TestSyncStats(t *testing.T) {
	st := newTestService().SyncStats()
	if st.OK != 2 || st.Warnings != 1 || st.Failures != 1 {
		t.Errorf("SyncStats = %+v, want 2/1/1", st)
	}
}

func TestAppendSyncEntryPrepends(t *testing.T) {
	s := newTestService()
	s.AppendSyncEntry(domain.SyncLogEntry{ID: "LS-005", Status: domain.SyncOK})
	log := s.SyncLog()
	if log[0].ID != "LS-005" {
		t.Errorf("SyncLog[0] = %s, want LS-005 (newest first)", log[0].ID)
	}
	if len(log) != 5 {
		t.Errorf("len(SyncLog) = %d, want 5", len(log))
	}
}

func TestSeedDataLoads(t *testing.T) {
	s := New(seed.Account(), seed.BankTransactions(), seed.DatevEntries(), seed.SyncLog())
	if got := len(s.Transactions()); got != 12 {
		t.Errorf("seed transactions = %d, want 12", got)
	}
	if st := s.DatevStats(); st.Posted+st.Open+st.Faulty != 12 {
		t.Errorf("seed datev rows = %d, want 12", st.Posted+st.Open+st.Faulty)
	}
}
