package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatSchedule renders the sprint timeline as an aligned table with a
// state line on top.
func FormatSchedule(s domain.Schedule) string {
	var b strings.Builder
	b.WriteString(StateIndicator(s.State))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s points over %d sprints", Points(s.TotalSize), s.Sprints())))
	b.WriteString("\n\n")

	headers := []string{"Sprint", "Start", "End", "Velocity", "Allocated", "Cumulative"}
	rows := make([][]string, 0, len(s.Windows))
	for _, w := range s.Windows {
		rows = append(rows, []string{
			strconv.Itoa(w.Number),
			w.Start.Format(dateLayout),
			w.End.Format(dateLayout),
			Points(w.EffectiveVelocity),
			Points(w.Allocated),
			Points(w.Cumulative),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if s.State == domain.ScheduleCapacityExhausted {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf(
			"%s points remain unallocated; the team cannot clear this backlog.", Points(s.Remaining))))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTeam renders the member roster.
func FormatTeam(team domain.Team) string {
	headers := []string{"Name", "Role", "FTE", "Velocity", "Rate", "Days/Week"}
	rows := make([][]string, 0, len(team.Members))
	for _, m := range team.Members {
		days := 0
		for _, on := range m.WorkingWeekdays {
			if on {
				days++
			}
		}
		rows = append(rows, []string{
			StyleBold.Render(m.Name),
			m.Role,
			Points(m.FTE),
			Points(m.BaseVelocity),
			Money(m.HourlyRate),
			strconv.Itoa(days),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(StyleDim.Render(fmt.Sprintf(
		"%d members, %s FTE, nominal velocity %s pts/sprint",
		len(team.Members), Points(team.TotalFTE()), Points(team.NominalVelocity()))))
	b.WriteString("\n")
	return b.String()
}

// FormatHolidays renders holiday entries with their scope.
func FormatHolidays(entries []domain.HolidayEntry) string {
	if len(entries) == 0 {
		return StyleDim.Render("No holidays recorded.") + "\n"
	}
	headers := []string{"Name", "From", "To", "Scope"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		scope := "team-wide"
		if !e.IsNational && len(e.Members) > 0 {
			scope = strings.Join(e.Members, ", ")
		}
		rows = append(rows, []string{
			e.Name,
			e.Start.Format(dateLayout),
			e.End.Format(dateLayout),
			StyleDim.Render(scope),
		})
	}
	return RenderTable(headers, rows)
}

// Points formats a point value, trimming a trailing ".0".
func Points(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Money formats a currency amount with two decimals.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
