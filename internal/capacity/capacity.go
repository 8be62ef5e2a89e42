// Package capacity converts nominal per-sprint velocities into effective
// velocities for concrete date windows.
package capacity

import (
	"time"

	"github.com/bvanleeuwen/specsheet/internal/calendar"
	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// EffectiveVelocity computes what the member can complete in the window:
//
//	base_velocity × fte × (actual_working_days / baseline_working_days) × (1 − overhead)
//
// baselineDays is the working-day count of a holiday-free sprint of the
// configured length and is supplied, not re-derived, so comparisons across
// sprints stay stable. A window fully consumed by holidays yields 0, which
// is a valid outcome, not an error.
func EffectiveVelocity(cal *calendar.Calendar, m domain.TeamMember, start, end time.Time, baselineDays int, overhead float64) float64 {
	if baselineDays <= 0 {
		return 0
	}
	actual := cal.WorkingDaysInRange(m, start, end)
	return m.BaseVelocity * m.FTE * (float64(actual) / float64(baselineDays)) * (1 - overhead)
}

// TeamEffectiveVelocity sums member effective velocities over the window
// and returns the per-member snapshot keyed by member name.
func TeamEffectiveVelocity(cal *calendar.Calendar, team domain.Team, start, end time.Time, baselineDays int, overhead float64) (float64, map[string]float64) {
	perMember := make(map[string]float64, len(team.Members))
	var total float64
	for _, m := range team.Members {
		v := EffectiveVelocity(cal, m, start, end, baselineDays, overhead)
		perMember[m.Name] = v
		total += v
	}
	return total, perMember
}
