package service

import (
	"context"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// BacklogSource produces the backlog snapshot for a run, normally the
// tracker client.
type BacklogSource interface {
	FetchBacklog(ctx context.Context) (domain.Backlog, error)
}

// HolidaySource fetches a country's public holidays for one year.
type HolidaySource interface {
	PublicHolidays(ctx context.Context, year int, countryCode string) ([]domain.HolidayEntry, error)
}

// PlanResult is the complete outcome of one planning run: the team and
// backlog snapshots it was computed from, the sprint schedule, and the
// priced quote.
type PlanResult struct {
	Team            domain.Team
	Backlog         domain.Backlog
	Schedule        domain.Schedule
	Quote           domain.QuoteReport
	Holidays        []domain.HolidayEntry
	SkippedHolidays []string
	GeneratedAt     time.Time
}

type PlanService interface {
	BuildPlan(ctx context.Context, firstStart time.Time) (*PlanResult, error)
}

type TeamService interface {
	AddMember(ctx context.Context, m *domain.TeamMember) error
	UpdateMember(ctx context.Context, m *domain.TeamMember) error
	RemoveMember(ctx context.Context, name string) error
	GetMember(ctx context.Context, name string) (*domain.TeamMember, error)
	ListTeam(ctx context.Context) (domain.Team, error)
}

type HolidayService interface {
	AddNational(ctx context.Context, h *domain.HolidayEntry) error
	AddPersonal(ctx context.Context, memberName string, h *domain.HolidayEntry) error
	ImportNational(ctx context.Context, year int, countryCode string) (int, error)
	ListNational(ctx context.Context) ([]domain.HolidayEntry, error)
	Remove(ctx context.Context, id string) error
}
