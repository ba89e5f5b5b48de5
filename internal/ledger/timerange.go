package ledger

import (
	"fmt"
	"time"
)

// RangeKind selects a reporting time window relative to evaluation time.
type RangeKind string

const (
	RangeToday  RangeKind = "today"
	RangeWeek   RangeKind = "week"
	RangeMonth  RangeKind = "month"
	RangeYear   RangeKind = "year"
	RangeCustom RangeKind = "custom"
	RangeAll    RangeKind = "all"
)

// Window is a resolved, inclusive time filter. A zero End means unbounded.
// The same predicate is shared by every aggregator, so report sections can
// never drift apart in how they interpret a range.
type Window struct {
	Start time.Time
	End   time.Time
	all   bool
	empty bool
}

// AllTime matches every record. Store inventory always uses it: physical
// stock is not a period metric.
func AllTime() Window { return Window{all: true} }

// NewWindow resolves a range kind against now. For RangeCustom both bounds
// are required; start is widened to 00:00:00 and end to 23:59:59 of its day.
func NewWindow(kind RangeKind, now time.Time, customStart, customEnd time.Time) (Window, error) {
	startOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	}

	switch kind {
	case RangeAll, "":
		return AllTime(), nil
	case RangeToday:
		return Window{Start: startOfDay(now), End: endOfDay(now)}, nil
	case RangeWeek:
		return Window{Start: startOfDay(now.AddDate(0, 0, -7))}, nil
	case RangeMonth:
		return Window{Start: startOfDay(now.AddDate(0, -1, 0))}, nil
	case RangeYear:
		return Window{Start: startOfDay(now.AddDate(-1, 0, 0))}, nil
	case RangeCustom:
		if customStart.IsZero() || customEnd.IsZero() {
			return Window{empty: true}, nil
		}
		return Window{Start: startOfDay(customStart), End: endOfDay(customEnd)}, nil
	default:
		return Window{}, fmt.Errorf("unknown time range %q", kind)
	}
}

// Unbounded reports whether the window matches every record.
func (w Window) Unbounded() bool { return w.all }

// Empty reports whether the window can match nothing (custom range with a
// missing bound).
func (w Window) Empty() bool { return w.empty }

// Contains reports whether t falls inside the window, bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	if w.empty {
		return false
	}
	if w.all {
		return true
	}
	if t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}
