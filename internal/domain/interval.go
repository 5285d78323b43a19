package domain

import "time"

// Interval is a half-open [Start, End) time interval
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is non-degenerate
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps reports whether two half-open intervals overlap.
// Touching endpoints do not count: a session ending at 14:00 does not
// conflict with one starting at 14:00.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// HasConflict reports whether candidate overlaps any of the existing
// intervals. An empty list never conflicts.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// ActiveIntervals collects the intervals of the active bookings in the list
func ActiveIntervals(bookings []*Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			intervals = append(intervals, b.Interval())
		}
	}
	return intervals
}
