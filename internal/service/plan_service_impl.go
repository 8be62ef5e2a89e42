package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/calendar"
	"github.com/bvanleeuwen/specsheet/internal/config"
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/pricing"
	"github.com/bvanleeuwen/specsheet/internal/repository"
	"github.com/bvanleeuwen/specsheet/internal/scheduler"
	"github.com/rs/zerolog"
)

type planService struct {
	settings  config.Settings
	checklist domain.QualityChecklist
	members   repository.MemberRepo
	holidays  repository.HolidayRepo
	backlog   BacklogSource
	log       zerolog.Logger
}

// NewPlanService wires a planning run. Settings and checklist are
// validated here so a bad configuration fails before any tracker call.
func NewPlanService(
	settings config.Settings,
	checklist domain.QualityChecklist,
	members repository.MemberRepo,
	holidays repository.HolidayRepo,
	backlog BacklogSource,
	log zerolog.Logger,
) (PlanService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := checklist.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidSettings, err)
	}
	return &planService{
		settings:  settings,
		checklist: checklist,
		members:   members,
		holidays:  holidays,
		backlog:   backlog,
		log:       log.With().Str("component", "plan").Logger(),
	}, nil
}

func (s *planService) BuildPlan(ctx context.Context, firstStart time.Time) (*PlanResult, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading team: %w", err)
	}
	team := domain.Team{Members: members}

	national, err := s.holidays.ListNational(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading holidays: %w", err)
	}

	cal := calendar.New(national, team)
	for _, name := range cal.Skipped() {
		s.log.Warn().Str("holiday", name).Msg("skipped holiday with inverted interval")
	}

	backlog, err := s.backlog.FetchBacklog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching backlog: %w", err)
	}

	schedule := scheduler.Build(cal, team, backlog.TotalSize(), firstStart, scheduler.Params{
		SprintLengthDays:    s.settings.SprintLengthDays,
		BaselineWorkingDays: s.settings.BaselineWorkingDays,
		OverheadFraction:    s.settings.SprintOverheadFraction,
		MaxSprints:          s.settings.MaxSprints,
	})

	quote := pricing.BuildReport(backlog, pricing.Inputs{
		PricePerPoint:         s.settings.PricePerPoint,
		ExperimentalVariance:  s.settings.ExperimentalVariance,
		BaseHourlyRate:        s.settings.BaseHourlyRate,
		HourlyRateDiscount:    s.settings.HourlyRateDiscount,
		HoursPerPoint:         s.settings.HoursPerPoint,
		ProvenThreshold:       s.settings.ProvenThreshold,
		ExperimentalThreshold: s.settings.ExperimentalThreshold,
		QualityMultiplier:     s.checklist.Multiplier(),
		RiskRules:             pricing.DefaultRiskRules(),
	})

	result := &PlanResult{
		Team:            team,
		Backlog:         backlog,
		Schedule:        schedule,
		Quote:           quote,
		SkippedHolidays: cal.Skipped(),
		GeneratedAt:     time.Now().UTC(),
	}
	if n := len(schedule.Windows); n > 0 {
		result.Holidays = cal.HolidaysInRange(schedule.Windows[0].Start, schedule.Windows[n-1].End)
	}

	s.log.Info().
		Int("members", len(team.Members)).
		Int("items", len(backlog)).
		Int("sprints", schedule.Sprints()).
		Str("state", string(schedule.State)).
		Float64("grand_total", quote.GrandTotal).
		Msg("plan built")
	return result, nil
}
