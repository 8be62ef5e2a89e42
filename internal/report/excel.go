// Package report renders a planning run into an Excel workbook with a
// sprint timeline sheet and a priced spec sheet.
package report

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/service"
	"github.com/xuri/excelize/v2"
)

const (
	timelineSheet  = "Timeline"
	specSheetName  = "Spec Sheet"
	dateCellLayout = "2006-01-02"
)

// Generator produces Excel workbooks from plan results.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the plan into an in-memory workbook.
func (g *Generator) Generate(result *service.PlanResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), timelineSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(specSheetName); err != nil {
		return nil, fmt.Errorf("adding sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("creating styles: %w", err)
	}

	if err := g.writeTimeline(f, styles, result); err != nil {
		return nil, fmt.Errorf("writing timeline: %w", err)
	}
	if err := g.writeSpecSheet(f, styles, result); err != nil {
		return nil, fmt.Errorf("writing spec sheet: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf, nil
}

// WriteFile renders the plan and writes the workbook to path.
func (g *Generator) WriteFile(result *service.PlanResult, path string) error {
	buf, err := g.Generate(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type sheetStyles struct {
	header int
	total  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	total, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, total: total}, nil
}

func (g *Generator) writeTimeline(f *excelize.File, styles sheetStyles, result *service.PlanResult) error {
	headers := []string{"Sprint", "Start", "End", "Effective Velocity", "Allocated Points", "Cumulative Points"}
	for _, m := range result.Team.Members {
		headers = append(headers, m.Name)
	}
	if err := writeRow(f, timelineSheet, 1, headers, styles.header); err != nil {
		return err
	}

	row := 2
	for _, w := range result.Schedule.Windows {
		values := []any{
			w.Number,
			w.Start.Format(dateCellLayout),
			w.End.Format(dateCellLayout),
			round2(w.EffectiveVelocity),
			round2(w.Allocated),
			round2(w.Cumulative),
		}
		for _, m := range result.Team.Members {
			values = append(values, round2(w.MemberVelocities[m.Name]))
		}
		if err := writeRow(f, timelineSheet, row, values, 0); err != nil {
			return err
		}
		row++
	}

	row++
	summary := [][]any{
		{"Total points", round2(result.Schedule.TotalSize)},
		{"Sprints", result.Schedule.Sprints()},
		{"State", string(result.Schedule.State)},
	}
	if result.Schedule.State == domain.ScheduleCapacityExhausted {
		summary = append(summary, []any{"Unallocated points", round2(result.Schedule.Remaining)})
	}
	for _, line := range summary {
		if err := writeRow(f, timelineSheet, row, line, styles.total); err != nil {
			return err
		}
		row++
	}

	if len(result.Holidays) > 0 {
		row++
		if err := writeRow(f, timelineSheet, row, []any{"Holiday", "From", "To"}, styles.header); err != nil {
			return err
		}
		row++
		for _, h := range result.Holidays {
			values := []any{h.Name, h.Start.Format(dateCellLayout), h.End.Format(dateCellLayout)}
			if err := writeRow(f, timelineSheet, row, values, 0); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(timelineSheet, "A", "F", 18)
}

func (g *Generator) writeSpecSheet(f *excelize.File, styles sheetStyles, result *service.PlanResult) error {
	headers := []string{"Key", "Title", "Epic", "Size", "Risk", "Priority",
		"Fixed Price", "Min Price", "Max Price", "Est. Hours", "Est. Cost"}
	if err := writeRow(f, specSheetName, 1, headers, styles.header); err != nil {
		return err
	}

	row := 2
	for _, q := range result.Quote.Items {
		values := []any{q.Key, q.Title, q.EpicKey, q.Size, string(q.Risk), string(q.Priority)}
		switch q.Risk {
		case domain.RiskProven:
			values = append(values, round2(q.FixedPrice), nil, nil, nil, nil)
		case domain.RiskExperimental:
			values = append(values, nil, round2(q.MinPrice), round2(q.MaxPrice), nil, nil)
		case domain.RiskDependant:
			values = append(values, nil, nil, nil, round2(q.EstimatedHours), round2(q.EstimatedCost))
		default:
			values = append(values, nil, nil, nil, nil, nil)
		}
		if err := writeRow(f, specSheetName, row, values, 0); err != nil {
			return err
		}
		row++
	}

	row++
	totals := [][]any{
		{"Quality multiplier", result.Quote.QualityMultiplier},
		{"Proven total", round2(result.Quote.ProvenTotal)},
		{"Experimental range", round2(result.Quote.ExperimentalMin), round2(result.Quote.ExperimentalMax)},
		{"Dependant total", round2(result.Quote.DependantTotal)},
		{"Grand total", round2(result.Quote.GrandTotal)},
		{"Unestimated items", result.Quote.UnestimatedCount},
	}
	for _, line := range totals {
		if err := writeRow(f, specSheetName, row, line, styles.total); err != nil {
			return err
		}
		row++
	}

	row++
	if err := writeRow(f, specSheetName, row, []any{"Risk Tier", "Items", "Points"}, styles.header); err != nil {
		return err
	}
	row++
	tiers := []domain.RiskTier{domain.RiskProven, domain.RiskExperimental, domain.RiskDependant, domain.RiskUnestimated}
	for _, tier := range tiers {
		values := []any{string(tier), result.Quote.TierCounts[tier], round2(result.Quote.TierPoints[tier])}
		if err := writeRow(f, specSheetName, row, values, 0); err != nil {
			return err
		}
		row++
	}

	row++
	if err := writeRow(f, specSheetName, row, []any{"Priority", "Items", "Points"}, styles.header); err != nil {
		return err
	}
	row++
	priorities := []domain.PriorityTier{
		domain.PriorityMustHave, domain.PriorityShouldHave, domain.PriorityCouldHave, domain.PriorityWontHave,
	}
	for _, tier := range priorities {
		values := []any{string(tier), result.Quote.PriorityCounts[tier], round2(result.Quote.PriorityPoints[tier])}
		if err := writeRow(f, specSheetName, row, values, 0); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(specSheetName, "A", "K", 16)
}

func writeRow[T any](f *excelize.File, sheet string, row int, values []T, style int) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
