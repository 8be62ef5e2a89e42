package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/db"
	"github.com/bvanleeuwen/specsheet/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteMemberRepo implements MemberRepo using a SQLite database.
type SQLiteMemberRepo struct {
	db db.DBTX
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(conn db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: conn}
}

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.TeamMember) error {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO members (id, name, role, fte, base_velocity, hourly_rate,
		working_weekdays, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Role, m.FTE, m.BaseVelocity, m.HourlyRate,
		encodeWeekdays(m.WorkingWeekdays),
		m.CreatedAt.Format(time.RFC3339), m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting member %q: %w", m.Name, err)
	}
	return nil
}

func (r *SQLiteMemberRepo) GetByName(ctx context.Context, name string) (*domain.TeamMember, error) {
	query := `SELECT id, name, role, fte, base_velocity, hourly_rate, working_weekdays,
		created_at, updated_at FROM members WHERE name = ?`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("member %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning member %q: %w", name, err)
	}
	return m, nil
}

func (r *SQLiteMemberRepo) List(ctx context.Context) ([]domain.TeamMember, error) {
	query := `SELECT id, name, role, fte, base_velocity, hourly_rate, working_weekdays,
		created_at, updated_at FROM members ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}

	holidays := NewSQLiteHolidayRepo(r.db)
	for i := range members {
		personal, err := holidays.ListForMember(ctx, members[i].ID)
		if err != nil {
			return nil, err
		}
		members[i].PersonalHolidays = personal
	}
	return members, nil
}

func (r *SQLiteMemberRepo) Update(ctx context.Context, m *domain.TeamMember) error {
	m.UpdatedAt = time.Now().UTC()
	query := `UPDATE members SET name = ?, role = ?, fte = ?, base_velocity = ?,
		hourly_rate = ?, working_weekdays = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Name, m.Role, m.FTE, m.BaseVelocity, m.HourlyRate,
		encodeWeekdays(m.WorkingWeekdays), m.UpdatedAt.Format(time.RFC3339), m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating member %q: %w", m.Name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating member %q: %w", m.Name, err)
	}
	if n == 0 {
		return fmt.Errorf("member %q: %w", m.Name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMemberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting member %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting member %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.TeamMember, error) {
	var m domain.TeamMember
	var weekdays, createdAt, updatedAt string
	if err := row.Scan(&m.ID, &m.Name, &m.Role, &m.FTE, &m.BaseVelocity,
		&m.HourlyRate, &weekdays, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	m.WorkingWeekdays = decodeWeekdays(weekdays)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &m, nil
}

// encodeWeekdays stores the mask as a sorted comma list of weekday numbers
// (Sunday = 0), e.g. "1,2,3,4,5" for Monday–Friday.
func encodeWeekdays(mask map[time.Weekday]bool) string {
	var days []int
	for d, on := range mask {
		if on {
			days = append(days, int(d))
		}
	}
	sort.Ints(days)
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) map[time.Weekday]bool {
	mask := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil && n >= 0 && n <= 6 {
			mask[time.Weekday(n)] = true
		}
	}
	return mask
}
