package domain

import "time"

// Slot is a candidate bookable interval, always exactly the service duration
// wide and aligned to the slot stride from the working-hours start.
// Slots are computed on demand and never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval returns the slot as a half-open interval
func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
