package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/db"
	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

// Create stores a holiday entry. An empty memberID makes it an
// organization-wide (national) entry. Inverted intervals are rejected here
// so they never reach the calendar.
func (r *SQLiteHolidayRepo) Create(ctx context.Context, memberID string, h *domain.HolidayEntry) error {
	if err := h.Validate(); err != nil {
		return err
	}

	var member any
	if memberID != "" {
		member = memberID
	}
	query := `INSERT INTO holidays (id, member_id, name, start_date, end_date, is_national)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, member, h.Name,
		h.Start.Format(dateLayout), h.End.Format(dateLayout),
		boolToInt(h.IsNational),
	)
	if err != nil {
		return fmt.Errorf("inserting holiday %q: %w", h.Name, err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) ListForMember(ctx context.Context, memberID string) ([]domain.HolidayEntry, error) {
	query := `SELECT id, name, start_date, end_date, is_national FROM holidays
		WHERE member_id = ? ORDER BY start_date`
	return r.list(ctx, query, memberID)
}

func (r *SQLiteHolidayRepo) ListNational(ctx context.Context) ([]domain.HolidayEntry, error) {
	query := `SELECT id, name, start_date, end_date, is_national FROM holidays
		WHERE member_id IS NULL ORDER BY start_date`
	return r.list(ctx, query)
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting holiday %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting holiday %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("holiday %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteHolidayRepo) list(ctx context.Context, query string, args ...any) ([]domain.HolidayEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var entries []domain.HolidayEntry
	for rows.Next() {
		var h domain.HolidayEntry
		var start, end string
		var national int
		if err := rows.Scan(&h.ID, &h.Name, &start, &end, &national); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		h.Start, err = time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday start %q: %w", start, err)
		}
		h.End, err = time.Parse(dateLayout, end)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday end %q: %w", end, err)
		}
		h.IsNational = national != 0
		entries = append(entries, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
