package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidMember marks member validation failures.
var ErrInvalidMember = errors.New("invalid member")

type teamService struct {
	members repository.MemberRepo
	log     zerolog.Logger
}

func NewTeamService(members repository.MemberRepo, log zerolog.Logger) TeamService {
	return &teamService{
		members: members,
		log:     log.With().Str("component", "team").Logger(),
	}
}

func (s *teamService) AddMember(ctx context.Context, m *domain.TeamMember) error {
	if err := validateMember(m); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.WorkingWeekdays == nil {
		m.WorkingWeekdays = domain.DefaultWorkingWeekdays()
	}
	if err := s.members.Create(ctx, m); err != nil {
		return err
	}
	s.log.Info().Str("member", m.Name).Float64("velocity", m.BaseVelocity).Msg("member added")
	return nil
}

func (s *teamService) UpdateMember(ctx context.Context, m *domain.TeamMember) error {
	if err := validateMember(m); err != nil {
		return err
	}
	return s.members.Update(ctx, m)
}

func (s *teamService) RemoveMember(ctx context.Context, name string) error {
	m, err := s.members.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.members.Delete(ctx, m.ID); err != nil {
		return err
	}
	s.log.Info().Str("member", name).Msg("member removed")
	return nil
}

func (s *teamService) GetMember(ctx context.Context, name string) (*domain.TeamMember, error) {
	return s.members.GetByName(ctx, name)
}

func (s *teamService) ListTeam(ctx context.Context) (domain.Team, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return domain.Team{}, err
	}
	return domain.Team{Members: members}, nil
}

func validateMember(m *domain.TeamMember) error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMember)
	case m.FTE < 0 || m.FTE > 1:
		return fmt.Errorf("%w: fte %v out of [0,1]", ErrInvalidMember, m.FTE)
	case m.BaseVelocity <= 0:
		return fmt.Errorf("%w: base velocity must be positive, got %v", ErrInvalidMember, m.BaseVelocity)
	case m.HourlyRate < 0:
		return fmt.Errorf("%w: hourly rate must be non-negative, got %v", ErrInvalidMember, m.HourlyRate)
	}
	return nil
}
