package deadline

import (
	"testing"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/store"
)

var testClock = FixedClock{Date: "2025-02-05"}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-02-05", 0},
		{"2025-02-06", 1},
		{"2025-02-12", 7},
		{"2025-03-05", 28},
		{"2025-02-01", -4},
		{"2024-12-31", -36},
		{"2025-03-06", 29},
	}
	for _, tt := range tests {
		got, err := DaysUntil(testClock, tt.date)
		if err != nil {
			t.Fatalf("DaysUntil(%q) error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("DaysUntil(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysUntilRejectsMalformedDate(t *testing.T) {
	if _, err := DaysUntil(testClock, "05.02.2025"); err == nil {
		t.Error("DaysUntil accepted a non-ISO date")
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		days int
		want Urgency
	}{
		{-10, UrgencyOverdue},
		{-1, UrgencyOverdue},
		{0, UrgencyToday},
		{1, UrgencyTomorrow},
		{2, UrgencyUrgent},
		{7, UrgencyUrgent},
		{8, UrgencyNormal},
		{60, UrgencyNormal},
	}
	for _, tt := range tests {
		if got := Bucket(tt.days); got != tt.want {
			t.Errorf("Bucket(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-3, "3 Tage überfällig"},
		{0, "HEUTE!"},
		{1, "Morgen!"},
		{5, "in 5 Tagen"},
	}
	for _, tt := range tests {
		if got := Label(tt.days); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func newTestTracker() *Tracker {
	s := store.New(store.Snapshot{
		Deadlines: []domain.Deadline{
			{ID: "FR-01", ClientID: 1, Date: "2025-02-10", Type: domain.DeadlinePaymentOrder, Critical: true},
			{ID: "FR-02", ClientID: 1, Date: "2025-02-03", Type: domain.DeadlineEnforcement, Critical: true},
			{ID: "FR-03", ClientID: 4, Date: "2025-03-05", Type: domain.DeadlineInsolvencyFiling, Critical: true},
			{ID: "FR-04", ClientID: 4, Date: "2025-03-06", Type: domain.DeadlineSettlementOffer, Critical: true},
			{ID: "FR-05", ClientID: 6, Date: "2025-02-20", Type: domain.DeadlineInstallmentPlan},
			{ID: "FR-06", ClientID: 6, Date: "2025-02-07", Type: domain.DeadlineCourtDate, Critical: true, Completed: true},
		},
	})
	return NewTracker(s, testClock)
}

func TestOpenSortedByDateAndSkipsCompleted(t *testing.T) {
	tr := newTestTracker()
	got := tr.Open()

	wantOrder := []string{"FR-02", "FR-01", "FR-05", "FR-03", "FR-04"}
	if len(got) != len(wantOrder) {
		t.Fatalf("len(Open) = %d, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("Open[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
	if got[0].Urgency != UrgencyOverdue || got[0].Label != "2 Tage überfällig" {
		t.Errorf("Open[0] urgency/label = %q/%q, want overdue/2 Tage überfällig", got[0].Urgency, got[0].Label)
	}
}

func TestUpcomingCriticalInclusiveHorizon(t *testing.T) {
	tr := newTestTracker()
	got := tr.UpcomingCritical()

	// FR-02 is overdue, FR-04 is 29 days out, FR-05 is not critical,
	// FR-06 is completed. FR-03 sits exactly on day 28 and stays in.
	wantIDs := []string{"FR-01", "FR-03"}
	if len(got) != len(wantIDs) {
		t.Fatalf("len(UpcomingCritical) = %d, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("UpcomingCritical[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestForClientIncludesCompleted(t *testing.T) {
	tr := newTestTracker()
	got := tr.ForClient(6)
	if len(got) != 2 {
		t.Fatalf("len(ForClient(6)) = %d, want 2", len(got))
	}
	if got[0].ID != "FR-06" || got[1].ID != "FR-05" {
		t.Errorf("ForClient order = %s, %s, want FR-06, FR-05", got[0].ID, got[1].ID)
	}
}
