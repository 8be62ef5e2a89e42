package capacity

import (
	"testing"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/calendar"
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullTimer(name string, velocity float64) domain.TeamMember {
	return domain.TeamMember{
		Name: name, FTE: 1.0, BaseVelocity: velocity,
		WorkingWeekdays: domain.DefaultWorkingWeekdays(),
	}
}

func TestEffectiveVelocity_HolidayFreeSprint(t *testing.T) {
	cal := calendar.New(nil, domain.Team{})
	m := fullTimer("Anna", 8)

	// Two calendar weeks starting Monday 2026-03-09: exactly the 10-day baseline.
	got := EffectiveVelocity(cal, m, date(2026, 3, 9), date(2026, 3, 22), 10, 0.15)
	assert.InDelta(t, 8*1.0*(10.0/10.0)*0.85, got, 1e-9)
}

func TestEffectiveVelocity_PartialAvailabilityAndHolidays(t *testing.T) {
	m := fullTimer("Anna", 8)
	m.FTE = 0.5
	m.PersonalHolidays = []domain.HolidayEntry{
		// Mon–Fri off in the first week: 5 working days lost.
		{Name: "Vacation", Start: date(2026, 3, 9), End: date(2026, 3, 13)},
	}
	cal := calendar.New(nil, domain.Team{Members: []domain.TeamMember{m}})

	got := EffectiveVelocity(cal, m, date(2026, 3, 9), date(2026, 3, 22), 10, 0.15)
	assert.InDelta(t, 8*0.5*(5.0/10.0)*0.85, got, 1e-9)
}

func TestEffectiveVelocity_FullyConsumedWindowIsZeroNotError(t *testing.T) {
	m := fullTimer("Anna", 8)
	m.PersonalHolidays = []domain.HolidayEntry{
		{Name: "Sabbatical", Start: date(2026, 3, 1), End: date(2026, 3, 31)},
	}
	cal := calendar.New(nil, domain.Team{Members: []domain.TeamMember{m}})

	got := EffectiveVelocity(cal, m, date(2026, 3, 9), date(2026, 3, 22), 10, 0.15)
	assert.Zero(t, got)
}

func TestEffectiveVelocity_ZeroFTEContributesNothing(t *testing.T) {
	cal := calendar.New(nil, domain.Team{})
	m := fullTimer("Cas", 10)
	m.FTE = 0

	got := EffectiveVelocity(cal, m, date(2026, 3, 9), date(2026, 3, 22), 10, 0)
	assert.Zero(t, got)
}

func TestTeamEffectiveVelocity_SumsAndSnapshots(t *testing.T) {
	team := domain.Team{Members: []domain.TeamMember{
		fullTimer("Anna", 8),
		fullTimer("Bram", 6),
	}}
	cal := calendar.New(nil, team)

	total, perMember := TeamEffectiveVelocity(cal, team, date(2026, 3, 9), date(2026, 3, 22), 10, 0)
	assert.InDelta(t, 14.0, total, 1e-9)
	assert.InDelta(t, 8.0, perMember["Anna"], 1e-9)
	assert.InDelta(t, 6.0, perMember["Bram"], 1e-9)
}

// Effective velocity must be monotonically non-increasing in the overhead
// fraction, all else fixed.
func TestEffectiveVelocity_OverheadMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(99)
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	cal := calendar.New(nil, domain.Team{})
	start, end := date(2026, 3, 9), date(2026, 3, 22)

	properties.Property("non-increasing in overhead", prop.ForAll(
		func(velocity, fte, o1, o2 float64) bool {
			m := domain.TeamMember{
				Name: "P", FTE: fte, BaseVelocity: velocity,
				WorkingWeekdays: domain.DefaultWorkingWeekdays(),
			}
			lo, hi := o1, o2
			if lo > hi {
				lo, hi = hi, lo
			}
			vLo := EffectiveVelocity(cal, m, start, end, 10, lo)
			vHi := EffectiveVelocity(cal, m, start, end, 10, hi)
			return vHi <= vLo+1e-12
		},
		gen.Float64Range(0, 20),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
