package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

// Issue is one consistency finding from Check.
type Issue struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Detail  string `json:"detail"`
}

const (
	IssueOrphanCreditor    = "orphan_creditor"
	IssueOrphanProgress    = "orphan_progress"
	IssueOrphanDeadline    = "orphan_deadline"
	IssueOrphanAppointment = "orphan_appointment"
	IssueDebtDrift         = "debt_drift"
	IssueCountDrift        = "count_drift"
	IssueAmountDrift       = "amount_drift"
)

// Check audits referential integrity and aggregate drift. Client
// deletion does not cascade, so orphans are an expected state after
// deletes; this surfaces them instead of failing the delete.
func (l *Ledger) Check() []Issue {
	snap := l.store.Snapshot()
	known := make(map[int]bool, len(snap.Clients))
	for _, c := range snap.Clients {
		known[c.ID] = true
	}

	var issues []Issue
	for _, c := range snap.Creditors {
		if !known[c.ClientID] {
			issues = append(issues, Issue{
				Kind:    IssueOrphanCreditor,
				Subject: c.ID,
				Detail:  fmt.Sprintf("creditor %s references missing client %d", c.ID, c.ClientID),
			})
		}
	}
	for _, p := range snap.Progress {
		if !known[p.ClientID] {
			issues = append(issues, Issue{
				Kind:    IssueOrphanProgress,
				Subject: fmt.Sprintf("client-%d", p.ClientID),
				Detail:  fmt.Sprintf("progress record references missing client %d", p.ClientID),
			})
		}
	}
	for _, d := range snap.Deadlines {
		if !known[d.ClientID] {
			issues = append(issues, Issue{
				Kind:    IssueOrphanDeadline,
				Subject: d.ID,
				Detail:  fmt.Sprintf("deadline %s references missing client %d", d.ID, d.ClientID),
			})
		}
	}
	for _, a := range snap.Appointments {
		if !known[a.ClientID] {
			issues = append(issues, Issue{
				Kind:    IssueOrphanAppointment,
				Subject: fmt.Sprintf("appointment-%d", a.ID),
				Detail:  fmt.Sprintf("appointment %d references missing client %d", a.ID, a.ClientID),
			})
		}
	}

	// Per-creditor amount sanity. A negotiated claim never grows, and
	// payments plus the remaining claim cannot exceed the original.
	for _, c := range snap.Creditors {
		if c.CurrentAmount.GreaterThan(c.OriginalAmount) {
			issues = append(issues, Issue{
				Kind:    IssueAmountDrift,
				Subject: c.ID,
				Detail:  fmt.Sprintf("current %s exceeds original %s", c.CurrentAmount, c.OriginalAmount),
			})
		} else if c.AmountPaid.Add(c.CurrentAmount).GreaterThan(c.OriginalAmount) {
			issues = append(issues, Issue{
				Kind:    IssueAmountDrift,
				Subject: c.ID,
				Detail: fmt.Sprintf("paid %s plus current %s exceeds original %s",
					c.AmountPaid, c.CurrentAmount, c.OriginalAmount),
			})
		}
	}

	// Progress aggregates against the creditor rows they summarize.
	perClient := make(map[int][]domain.Creditor)
	for _, c := range snap.Creditors {
		perClient[c.ClientID] = append(perClient[c.ClientID], c)
	}
	for _, p := range snap.Progress {
		cs := perClient[p.ClientID]
		if len(cs) == 0 {
			continue
		}
		sum := decimalSumCurrent(cs)
		if !sum.Equal(p.DebtCurrent) {
			issues = append(issues, Issue{
				Kind:    IssueDebtDrift,
				Subject: fmt.Sprintf("client-%d", p.ClientID),
				Detail:  fmt.Sprintf("progress debtCurrent %s != creditor sum %s", p.DebtCurrent, sum),
			})
		}
		done := 0
		for _, c := range cs {
			if c.Status == domain.StatusDone {
				done++
			}
		}
		if p.CreditorsTotal != len(cs) || p.CreditorsDone != done {
			issues = append(issues, Issue{
				Kind:    IssueCountDrift,
				Subject: fmt.Sprintf("client-%d", p.ClientID),
				Detail: fmt.Sprintf("progress counts %d/%d != creditor rows %d/%d",
					p.CreditorsDone, p.CreditorsTotal, done, len(cs)),
			})
		}
	}
	return issues
}

func decimalSumCurrent(cs []domain.Creditor) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range cs {
		sum = sum.Add(c.CurrentAmount)
	}
	return sum
}
