// Package ledger computes the negotiation views over the creditor
// collections: per-client totals, reduction percentages, the pipeline
// ordering and portfolio-wide statistics. All functions are pure over a
// store snapshot; nothing here mutates.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/store"
)

var hundred = decimal.NewFromInt(100)

// Ledger reads the creditor collections of a store.
type Ledger struct {
	store *store.Store
}

// New wraps the given store.
func New(s *store.Store) *Ledger { return &Ledger{store: s} }

// CreditorsForClient returns the client's creditors in insertion order.
func (l *Ledger) CreditorsForClient(clientID int) []domain.Creditor {
	var out []domain.Creditor
	for _, c := range l.store.Creditors() {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out
}

// ProgressForClient returns the client's progress record, if any.
func (l *Ledger) ProgressForClient(clientID int) (domain.ClientProgress, bool) {
	for _, p := range l.store.ProgressRecords() {
		if p.ClientID == clientID {
			return p, true
		}
	}
	return domain.ClientProgress{}, false
}

// ClientTotals is the per-client money summary derived from the
// client's creditors.
type ClientTotals struct {
	Original       decimal.Decimal `json:"originalGesamt"`
	Current        decimal.Decimal `json:"aktuellGesamt"`
	Paid           decimal.Decimal `json:"gezahltGesamt"`
	PercentReduced int             `json:"prozentReduziert"`
	Creditors      int             `json:"glaeubiger"`
	CreditorsDone  int             `json:"glaeubigerErledigt"`
}

// Totals sums the client's creditors.
func (l *Ledger) Totals(clientID int) ClientTotals {
	t := ClientTotals{Original: decimal.Zero, Current: decimal.Zero, Paid: decimal.Zero}
	for _, c := range l.CreditorsForClient(clientID) {
		t.Original = t.Original.Add(c.OriginalAmount)
		t.Current = t.Current.Add(c.CurrentAmount)
		t.Paid = t.Paid.Add(c.AmountPaid)
		t.Creditors++
		if c.Status == domain.StatusDone {
			t.CreditorsDone++
		}
	}
	t.PercentReduced = PercentReduced(t.Original, t.Current)
	return t
}

// PercentReduced is round((original-current)/original*100). A zero
// original yields 0, never a division error.
func PercentReduced(original, current decimal.Decimal) int {
	if original.IsZero() {
		return 0
	}
	return int(original.Sub(current).Div(original).Mul(hundred).Round(0).IntPart())
}

// SettlementSavingsPercent is the settlement discount against the
// original amount. Pending offers count too, only the offer itself is
// required. Zero when no offer exists.
func SettlementSavingsPercent(c domain.Creditor) int {
	if c.SettlementOffer == nil {
		return 0
	}
	return PercentReduced(c.OriginalAmount, *c.SettlementOffer)
}

// PipelineEntry is one row of the pipeline view.
type PipelineEntry struct {
	domain.ClientProgress
	PhaseStep      int `json:"phaseStep"`
	PercentReduced int `json:"prozentReduziert"`
}

// Pipeline returns all progress records sorted by phase step, ascending.
// The sort is stable: clients in the same phase keep insertion order.
func (l *Ledger) Pipeline() []PipelineEntry {
	recs := l.store.ProgressRecords()
	out := make([]PipelineEntry, 0, len(recs))
	for _, p := range recs {
		out = append(out, PipelineEntry{
			ClientProgress: p,
			PhaseStep:      domain.PhaseLabels[p.Phase].Step,
			PercentReduced: PercentReduced(p.DebtAtStart, p.DebtCurrent),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PhaseStep < out[j].PhaseStep })
	return out
}

// Portfolio is the practice-wide debt summary across all progress
// records.
type Portfolio struct {
	Clients        int             `json:"klienten"`
	DebtAtStart    decimal.Decimal `json:"schuldenStart"`
	DebtCurrent    decimal.Decimal `json:"schuldenAktuell"`
	PercentReduced int             `json:"prozentReduziert"`
	SettlementsWon int             `json:"vergleicheErreicht"`
	CreditorsTotal int             `json:"glaeubigerGesamt"`
	CreditorsDone  int             `json:"glaeubigerErledigt"`
}

// Portfolio aggregates every progress record.
func (l *Ledger) Portfolio() Portfolio {
	p := Portfolio{DebtAtStart: decimal.Zero, DebtCurrent: decimal.Zero}
	for _, rec := range l.store.ProgressRecords() {
		p.Clients++
		p.DebtAtStart = p.DebtAtStart.Add(rec.DebtAtStart)
		p.DebtCurrent = p.DebtCurrent.Add(rec.DebtCurrent)
		p.SettlementsWon += rec.SettlementsWon
		p.CreditorsTotal += rec.CreditorsTotal
		p.CreditorsDone += rec.CreditorsDone
	}
	p.PercentReduced = PercentReduced(p.DebtAtStart, p.DebtCurrent)
	return p
}

// Success is one accepted settlement for the success board.
type Success struct {
	CreditorID     string          `json:"creditorId"`
	ClientID       int             `json:"clientId"`
	CreditorName   string          `json:"glaeubiger"`
	OriginalAmount decimal.Decimal `json:"originalBetrag"`
	Settlement     decimal.Decimal `json:"vergleich"`
	SavingsPercent int             `json:"ersparnisProzent"`
}

// Successes lists accepted settlements, biggest saving first. Ties keep
// insertion order.
func (l *Ledger) Successes() []Success {
	var out []Success
	for _, c := range l.store.Creditors() {
		if !c.SettlementAgreed || c.SettlementOffer == nil {
			continue
		}
		out = append(out, Success{
			CreditorID:     c.ID,
			ClientID:       c.ClientID,
			CreditorName:   c.Name,
			OriginalAmount: c.OriginalAmount,
			Settlement:     *c.SettlementOffer,
			SavingsPercent: SettlementSavingsPercent(c),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SavingsPercent > out[j].SavingsPercent })
	return out
}
