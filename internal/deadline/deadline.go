// Package deadline tracks dated obligations: day-of differences against a
// pluggable clock, urgency bucketing and the critical-horizon view.
package deadline

import (
	"fmt"
	"sort"
	"time"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/store"
)

// Clock supplies "today". The server runs on RealClock; tests and the
// demo seed pin a FixedClock so date arithmetic is reproducible.
type Clock interface {
	Today() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Today() time.Time { return time.Now() }

// FixedClock always reports the same date.
type FixedClock struct{ Date string }

func (c FixedClock) Today() time.Time {
	t, err := time.Parse(time.DateOnly, c.Date)
	if err != nil {
		panic(fmt.Sprintf("deadline: bad fixed clock date %q: %v", c.Date, err))
	}
	return t
}

// Urgency buckets a deadline by distance from today.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"  // date already passed
	UrgencyToday    Urgency = "today"    // due today
	UrgencyTomorrow Urgency = "tomorrow" // due tomorrow
	UrgencyUrgent   Urgency = "urgent"   // 2 to 7 days out
	UrgencyNormal   Urgency = "normal"   // 8 or more days out
)

// DaysUntil returns the whole days from today to the ISO date, both
// normalized to midnight. Past dates are negative. Malformed dates
// report an error instead of a silent zero.
func DaysUntil(clock Clock, date string) (int, error) {
	due, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0, fmt.Errorf("parse deadline date %q: %w", date, err)
	}
	now := clock.Today()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24), nil
}

// Bucket classifies a day distance.
func Bucket(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days == 1:
		return UrgencyTomorrow
	case days <= 7:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}

// Label renders the day distance the way the dashboard displays it.
func Label(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d Tage überfällig", -days)
	case days == 0:
		return "HEUTE!"
	case days == 1:
		return "Morgen!"
	default:
		return fmt.Sprintf("in %d Tagen", days)
	}
}

// CriticalHorizonDays is the inclusive window for the critical-deadline
// banner: due today through due in 28 days.
const CriticalHorizonDays = 28

// View is a deadline annotated with its computed distance.
type View struct {
	domain.Deadline
	DaysUntil int     `json:"tageVerbleibend"`
	Urgency   Urgency `json:"dringlichkeit"`
	Label     string  `json:"label"`
}

// Tracker computes deadline views over a store.
type Tracker struct {
	store *store.Store
	clock Clock
}

// NewTracker wraps the store with the given clock.
func NewTracker(s *store.Store, clock Clock) *Tracker {
	return &Tracker{store: s, clock: clock}
}

func (t *Tracker) view(d domain.Deadline) (View, bool) {
	days, err := DaysUntil(t.clock, d.Date)
	if err != nil {
		return View{}, false
	}
	return View{Deadline: d, DaysUntil: days, Urgency: Bucket(days), Label: Label(days)}, true
}

// Open returns all uncompleted deadlines sorted by date ascending, so
// the most pressing come first. Completed deadlines and rows with
// unparseable dates are dropped.
func (t *Tracker) Open() []View {
	var out []View
	for _, d := range t.store.Deadlines() {
		if d.Completed {
			continue
		}
		if v, ok := t.view(d); ok {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// UpcomingCritical returns open critical deadlines due within the
// inclusive horizon. Overdue critical deadlines are not in this view;
// they surface through Open with the overdue urgency.
func (t *Tracker) UpcomingCritical() []View {
	var out []View
	for _, v := range t.Open() {
		if v.Critical && v.DaysUntil >= 0 && v.DaysUntil <= CriticalHorizonDays {
			out = append(out, v)
		}
	}
	return out
}

// ForClient returns the client's deadlines, completed ones included,
// sorted by date.
func (t *Tracker) ForClient(clientID int) []View {
	var out []View
	for _, d := range t.store.Deadlines() {
		if d.ClientID != clientID {
			continue
		}
		if v, ok := t.view(d); ok {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
