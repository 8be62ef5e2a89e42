package domain

import "time"

// SprintWindow is one emitted sprint: the calendar window, the per-member
// effective-velocity snapshot for that window, and the size allocated.
// Windows are computed fresh on every run and never mutated afterwards.
type SprintWindow struct {
	Number            int
	Start             time.Time
	End               time.Time
	MemberVelocities  map[string]float64
	EffectiveVelocity float64
	Allocated         float64
	Cumulative        float64
}

// Schedule is the ordered sprint sequence plus the terminal state of the
// run. CapacityExhausted is a result, not an error: the caller presents it
// as "this team cannot realistically clear the backlog".
type Schedule struct {
	Windows   []SprintWindow
	State     ScheduleState
	TotalSize float64
	Remaining float64
}

// Sprints is the number of emitted windows.
func (s Schedule) Sprints() int {
	return len(s.Windows)
}
