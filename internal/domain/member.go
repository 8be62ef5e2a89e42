package domain

import "time"

// TeamMember is a person contributing capacity to the project.
// FTE is the fraction of full-time availability in [0,1]; BaseVelocity is
// the size a member completes per full sprint at 100% availability. A
// member with FTE == 0 contributes no capacity but stays listed for cost
// bookkeeping.
type TeamMember struct {
	ID           string
	Name         string
	Role         string
	FTE          float64
	BaseVelocity float64
	HourlyRate   float64

	// WorkingWeekdays is the set of weekdays this member works.
	// Empty means the member never works.
	WorkingWeekdays map[time.Weekday]bool

	// PersonalHolidays are closed date intervals scoped to this member.
	PersonalHolidays []HolidayEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultWorkingWeekdays returns the Monday–Friday mask.
func DefaultWorkingWeekdays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

// WorksOn reports whether the weekday is in the member's working mask.
func (m TeamMember) WorksOn(d time.Weekday) bool {
	return m.WorkingWeekdays[d]
}

// Team is an ordered collection of members. Insertion order is irrelevant
// to capacity and only drives deterministic report ordering.
type Team struct {
	Members []TeamMember
}

// NominalVelocity is Σ(base_velocity × fte), before calendar and overhead.
func (t Team) NominalVelocity() float64 {
	var total float64
	for _, m := range t.Members {
		total += m.BaseVelocity * m.FTE
	}
	return total
}

// TotalFTE is the summed availability of all members.
func (t Team) TotalFTE() float64 {
	var total float64
	for _, m := range t.Members {
		total += m.FTE
	}
	return total
}
