// Package calendar answers "is date D a working day for member M" given
// weekday masks and holiday intervals, and counts working days over ranges.
package calendar

import (
	"time"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// Calendar holds the merged holiday entries for a run: organization-wide
// entries plus every member's personal entries. It is immutable after New.
type Calendar struct {
	entries []domain.HolidayEntry
	skipped []string
}

// New builds a calendar from organization entries and the team's personal
// entries. Entries with an inverted interval are skipped, recorded by name,
// and never abort the whole calendar. Personal entries are scoped to their
// owning member.
func New(orgEntries []domain.HolidayEntry, team domain.Team) *Calendar {
	cal := &Calendar{}
	for _, e := range orgEntries {
		cal.add(e)
	}
	for _, m := range team.Members {
		for _, e := range m.PersonalHolidays {
			if !e.IsNational && len(e.Members) == 0 {
				e.Members = []string{m.Name}
			}
			cal.add(e)
		}
	}
	return cal
}

func (c *Calendar) add(e domain.HolidayEntry) {
	if err := e.Validate(); err != nil {
		c.skipped = append(c.skipped, e.Name)
		return
	}
	c.entries = append(c.entries, e)
}

// Skipped returns the names of entries rejected during construction.
func (c *Calendar) Skipped() []string {
	return c.skipped
}

// IsWorkingDay reports whether day is a working day for the member: the
// weekday must be in the member's mask and no applicable holiday entry may
// contain the date.
func (c *Calendar) IsWorkingDay(m domain.TeamMember, day time.Time) bool {
	if !m.WorksOn(day.Weekday()) {
		return false
	}
	for _, e := range c.entries {
		if e.Contains(day) && e.AppliesTo(m.Name) {
			return false
		}
	}
	return true
}

// WorkingDaysInRange counts working dates in [start, end] inclusive by
// enumerating each calendar date once. Holiday entries break the weekly
// pattern irregularly, so there is no shortcut over whole weeks.
// An empty range (start after end) yields 0.
func (c *Calendar) WorkingDaysInRange(m domain.TeamMember, start, end time.Time) int {
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if c.IsWorkingDay(m, day) {
			count++
		}
	}
	return count
}

// HolidaysInRange returns the entries overlapping [start, end], for report
// rendering.
func (c *Calendar) HolidaysInRange(start, end time.Time) []domain.HolidayEntry {
	var out []domain.HolidayEntry
	for _, e := range c.entries {
		if !e.Start.After(end) && !e.End.Before(start) {
			out = append(out, e)
		}
	}
	return out
}
