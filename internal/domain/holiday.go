package domain

import (
	"fmt"
	"time"
)

// HolidayEntry is a closed date interval [Start, End] during which the
// affected members do not work. A national entry affects everyone;
// otherwise only the listed member names are affected. Overlapping entries
// are additive in effect: a date closed by any applicable entry is closed.
type HolidayEntry struct {
	ID         string
	Name       string
	Start      time.Time
	End        time.Time
	IsNational bool
	Members    []string
}

// Validate rejects inverted intervals. Invalid entries are dropped at load
// time as a per-entry data error, never fatal to the whole calendar.
func (h HolidayEntry) Validate() error {
	if h.End.Before(h.Start) {
		return fmt.Errorf("holiday %q: end %s before start %s",
			h.Name, h.End.Format("2006-01-02"), h.Start.Format("2006-01-02"))
	}
	return nil
}

// AppliesTo reports whether the entry closes dates for the named member.
func (h HolidayEntry) AppliesTo(memberName string) bool {
	if h.IsNational {
		return true
	}
	for _, n := range h.Members {
		if n == memberName {
			return true
		}
	}
	return false
}

// Contains reports whether day falls inside the closed interval.
func (h HolidayEntry) Contains(day time.Time) bool {
	return !day.Before(h.Start) && !day.After(h.End)
}
