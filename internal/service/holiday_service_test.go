package service

import (
	"context"
	"testing"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/repository"
	"github.com/bvanleeuwen/specsheet/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidaySource struct {
	entries []domain.HolidayEntry
	err     error
}

func (f *fakeHolidaySource) PublicHolidays(ctx context.Context, year int, countryCode string) ([]domain.HolidayEntry, error) {
	return f.entries, f.err
}

func setupHolidayService(t *testing.T, source HolidaySource) (HolidayService, repository.MemberRepo) {
	database := testutil.NewTestDB(t)
	members := repository.NewSQLiteMemberRepo(database)
	holidays := repository.NewSQLiteHolidayRepo(database)
	return NewHolidayService(members, holidays, source, zerolog.Nop()), members
}

func TestHolidayService_AddNational(t *testing.T) {
	svc, _ := setupHolidayService(t, &fakeHolidaySource{})
	ctx := context.Background()

	h := &domain.HolidayEntry{
		Name:  "Kingsday",
		Start: testutil.Date(2026, time.April, 27),
		End:   testutil.Date(2026, time.April, 27),
	}
	require.NoError(t, svc.AddNational(ctx, h))
	assert.NotEmpty(t, h.ID)
	assert.True(t, h.IsNational)

	entries, err := svc.ListNational(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kingsday", entries[0].Name)
}

func TestHolidayService_AddPersonal(t *testing.T) {
	svc, members := setupHolidayService(t, &fakeHolidaySource{})
	ctx := context.Background()

	alice := testutil.NewMember("Alice", 8)
	require.NoError(t, members.Create(ctx, &alice))

	h := &domain.HolidayEntry{
		Name:  "Leave",
		Start: testutil.Date(2026, time.May, 4),
		End:   testutil.Date(2026, time.May, 8),
	}
	require.NoError(t, svc.AddPersonal(ctx, "Alice", h))

	list, err := members.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].PersonalHolidays, 1)
	assert.Equal(t, "Leave", list[0].PersonalHolidays[0].Name)
}

func TestHolidayService_AddPersonalUnknownMember(t *testing.T) {
	svc, _ := setupHolidayService(t, &fakeHolidaySource{})

	h := &domain.HolidayEntry{
		Name:  "Leave",
		Start: testutil.Date(2026, time.May, 4),
		End:   testutil.Date(2026, time.May, 8),
	}
	err := svc.AddPersonal(context.Background(), "Ghost", h)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHolidayService_ImportNational(t *testing.T) {
	source := &fakeHolidaySource{entries: []domain.HolidayEntry{
		testutil.NewHoliday("Nieuwjaarsdag", testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 1)),
		testutil.NewHoliday("Koningsdag", testutil.Date(2026, time.April, 27), testutil.Date(2026, time.April, 27)),
	}}
	svc, _ := setupHolidayService(t, source)
	ctx := context.Background()

	count, err := svc.ImportNational(ctx, 2026, "NL")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	entries, err := svc.ListNational(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestHolidayService_RejectsInvertedInterval(t *testing.T) {
	svc, _ := setupHolidayService(t, &fakeHolidaySource{})

	h := &domain.HolidayEntry{
		Name:  "Backwards",
		Start: testutil.Date(2026, time.May, 8),
		End:   testutil.Date(2026, time.May, 4),
	}
	assert.Error(t, svc.AddNational(context.Background(), h))
}

func TestHolidayService_Remove(t *testing.T) {
	svc, _ := setupHolidayService(t, &fakeHolidaySource{})
	ctx := context.Background()

	h := &domain.HolidayEntry{
		Name:  "Kingsday",
		Start: testutil.Date(2026, time.April, 27),
		End:   testutil.Date(2026, time.April, 27),
	}
	require.NoError(t, svc.AddNational(ctx, h))
	require.NoError(t, svc.Remove(ctx, h.ID))
	assert.ErrorIs(t, svc.Remove(ctx, h.ID), repository.ErrNotFound)
}
