// Package scheduler allocates aggregate backlog size to sequential sprint
// windows using each window's effective team velocity.
package scheduler

import (
	"math"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/calendar"
	"github.com/bvanleeuwen/specsheet/internal/capacity"
	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// Params are the scheduling knobs, resolved once from settings before the
// run starts.
type Params struct {
	SprintLengthDays    int
	BaselineWorkingDays int
	OverheadFraction    float64
	// MaxSprints bounds the greedy loop. Reaching it is the
	// capacity-exhausted terminal state, not an error.
	MaxSprints int
}

// Build runs the greedy sequential allocation: each sprint window gets
// min(remaining, effective velocity), the cursor always advances by the
// sprint length. A sprint with zero effective velocity (team fully on
// holiday) still consumes a slot; skipping it would misrepresent elapsed
// calendar time. A zero-size backlog yields a single empty sprint.
func Build(cal *calendar.Calendar, team domain.Team, totalSize float64, firstStart time.Time, p Params) domain.Schedule {
	schedule := domain.Schedule{TotalSize: totalSize}

	remaining := totalSize
	cursor := midnightUTC(firstStart)
	cumulative := 0.0

	for {
		end := cursor.AddDate(0, 0, p.SprintLengthDays-1)
		effective, perMember := capacity.TeamEffectiveVelocity(
			cal, team, cursor, end, p.BaselineWorkingDays, p.OverheadFraction)

		allocated := math.Min(remaining, effective)
		if allocated < 0 {
			allocated = 0
		}
		cumulative += allocated

		schedule.Windows = append(schedule.Windows, domain.SprintWindow{
			Number:            len(schedule.Windows) + 1,
			Start:             cursor,
			End:               end,
			MemberVelocities:  perMember,
			EffectiveVelocity: effective,
			Allocated:         allocated,
			Cumulative:        cumulative,
		})

		remaining -= allocated
		cursor = cursor.AddDate(0, 0, p.SprintLengthDays)

		if remaining <= 0 {
			schedule.State = domain.ScheduleComplete
			schedule.Remaining = 0
			return schedule
		}
		if len(schedule.Windows) >= p.MaxSprints {
			schedule.State = domain.ScheduleCapacityExhausted
			schedule.Remaining = remaining
			return schedule
		}
	}
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
