package repository

import (
	"context"
	"errors"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// MemberRepo persists team members.
type MemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByName(ctx context.Context, name string) (*domain.TeamMember, error)
	// List returns all members with their personal holidays attached,
	// ordered by name for deterministic reports.
	List(ctx context.Context) ([]domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// HolidayRepo persists holiday entries. Entries without a member are
// organization-wide (national) entries.
type HolidayRepo interface {
	Create(ctx context.Context, memberID string, h *domain.HolidayEntry) error
	ListForMember(ctx context.Context, memberID string) ([]domain.HolidayEntry, error)
	ListNational(ctx context.Context) ([]domain.HolidayEntry, error)
	Delete(ctx context.Context, id string) error
}
