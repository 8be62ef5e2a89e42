package service

import (
	"context"
	"fmt"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type holidayService struct {
	members  repository.MemberRepo
	holidays repository.HolidayRepo
	source   HolidaySource
	log      zerolog.Logger
}

func NewHolidayService(
	members repository.MemberRepo,
	holidays repository.HolidayRepo,
	source HolidaySource,
	log zerolog.Logger,
) HolidayService {
	return &holidayService{
		members:  members,
		holidays: holidays,
		source:   source,
		log:      log.With().Str("component", "holiday").Logger(),
	}
}

func (s *holidayService) AddNational(ctx context.Context, h *domain.HolidayEntry) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.IsNational = true
	if err := s.holidays.Create(ctx, "", h); err != nil {
		return err
	}
	s.log.Info().Str("holiday", h.Name).Msg("national holiday added")
	return nil
}

func (s *holidayService) AddPersonal(ctx context.Context, memberName string, h *domain.HolidayEntry) error {
	m, err := s.members.GetByName(ctx, memberName)
	if err != nil {
		return err
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.IsNational = false
	if err := s.holidays.Create(ctx, m.ID, h); err != nil {
		return err
	}
	s.log.Info().Str("holiday", h.Name).Str("member", memberName).Msg("personal holiday added")
	return nil
}

// ImportNational pulls a year of public holidays and stores them as
// organization-wide entries. Returns the number of entries stored.
func (s *holidayService) ImportNational(ctx context.Context, year int, countryCode string) (int, error) {
	entries, err := s.source.PublicHolidays(ctx, year, countryCode)
	if err != nil {
		return 0, fmt.Errorf("importing %s holidays for %d: %w", countryCode, year, err)
	}
	for i := range entries {
		if err := s.holidays.Create(ctx, "", &entries[i]); err != nil {
			return i, fmt.Errorf("storing holiday %q: %w", entries[i].Name, err)
		}
	}
	s.log.Info().Int("count", len(entries)).Str("country", countryCode).Int("year", year).Msg("holidays imported")
	return len(entries), nil
}

func (s *holidayService) ListNational(ctx context.Context) ([]domain.HolidayEntry, error) {
	return s.holidays.ListNational(ctx)
}

func (s *holidayService) Remove(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}
