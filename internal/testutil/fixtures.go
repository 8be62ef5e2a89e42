package testutil

import (
	"time"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/google/uuid"
)

// NewMember returns a full-time Monday–Friday member with sensible rates.
func NewMember(name string, velocity float64) domain.TeamMember {
	return domain.TeamMember{
		ID:              uuid.NewString(),
		Name:            name,
		Role:            "Developer",
		FTE:             1.0,
		BaseVelocity:    velocity,
		HourlyRate:      95.37,
		WorkingWeekdays: domain.DefaultWorkingWeekdays(),
	}
}

// NewHoliday returns a personal holiday entry spanning [start, end].
func NewHoliday(name string, start, end time.Time) domain.HolidayEntry {
	return domain.HolidayEntry{
		ID:    uuid.NewString(),
		Name:  name,
		Start: start,
		End:   end,
	}
}

// Date is shorthand for a UTC midnight date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
