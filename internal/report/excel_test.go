package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/bvanleeuwen/specsheet/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleResult() *service.PlanResult {
	return &service.PlanResult{
		Team: domain.Team{
			Members: []domain.TeamMember{
				{Name: "Alice", BaseVelocity: 8},
				{Name: "Bob", BaseVelocity: 4},
			},
		},
		Schedule: domain.Schedule{
			Windows: []domain.SprintWindow{
				{Number: 1, Start: date(2026, time.March, 9), End: date(2026, time.March, 22),
					MemberVelocities:  map[string]float64{"Alice": 6.8, "Bob": 3.4},
					EffectiveVelocity: 10.2, Allocated: 10.2, Cumulative: 10.2},
				{Number: 2, Start: date(2026, time.March, 23), End: date(2026, time.April, 5),
					MemberVelocities:  map[string]float64{"Alice": 6.8, "Bob": 3.4},
					EffectiveVelocity: 10.2, Allocated: 9.8, Cumulative: 20},
			},
			State:     domain.ScheduleComplete,
			TotalSize: 20,
		},
		Quote: domain.QuoteReport{
			Items: []domain.ItemQuote{
				{Key: "PROJ-1", Title: "Login", Size: 2, Risk: domain.RiskProven,
					Priority: domain.PriorityMustHave, FixedPrice: 260},
				{Key: "PROJ-2", Title: "Search", Size: 5, Risk: domain.RiskExperimental,
					Priority: domain.PriorityShouldHave, MinPrice: 455, MaxPrice: 845},
				{Key: "PROJ-3", Title: "Migration", Size: 13, Risk: domain.RiskDependant,
					Priority: domain.PriorityCouldHave, EstimatedHours: 104, EstimatedCost: 9918.48},
				{Key: "PROJ-4", Title: "Vague idea", Risk: domain.RiskUnestimated,
					Priority: domain.PriorityShouldHave},
			},
			QualityMultiplier: 1.0,
			ProvenTotal:       260,
			ExperimentalMin:   455,
			ExperimentalMax:   845,
			DependantTotal:    9918.48,
			GrandTotal:        260 + 845 + 9918.48,
			UnestimatedCount:  1,
			TierCounts: map[domain.RiskTier]int{
				domain.RiskProven: 1, domain.RiskExperimental: 1,
				domain.RiskDependant: 1, domain.RiskUnestimated: 1,
			},
			TierPoints: map[domain.RiskTier]float64{
				domain.RiskProven: 2, domain.RiskExperimental: 5, domain.RiskDependant: 13,
			},
			PriorityCounts: map[domain.PriorityTier]int{
				domain.PriorityMustHave: 1, domain.PriorityShouldHave: 2, domain.PriorityCouldHave: 1,
			},
			PriorityPoints: map[domain.PriorityTier]float64{
				domain.PriorityMustHave: 2, domain.PriorityShouldHave: 5, domain.PriorityCouldHave: 13,
			},
		},
		Holidays: []domain.HolidayEntry{
			{Name: "Kingsday", Start: date(2026, time.April, 27), End: date(2026, time.April, 27)},
		},
		GeneratedAt: date(2026, time.March, 1),
	}
}

func TestGenerate_SheetsAndCells(t *testing.T) {
	buf, err := NewGenerator().Generate(sampleResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Timeline", "Spec Sheet"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Sprint", cell("Timeline", "A1"))
	assert.Equal(t, "1", cell("Timeline", "A2"))
	assert.Equal(t, "2026-03-09", cell("Timeline", "B2"))
	assert.Equal(t, "2026-03-22", cell("Timeline", "C2"))
	assert.Equal(t, "10.2", cell("Timeline", "D2"))
	assert.Equal(t, "9.8", cell("Timeline", "E3"))
	assert.Equal(t, "20", cell("Timeline", "F3"))
	assert.Equal(t, "Alice", cell("Timeline", "G1"))
	assert.Equal(t, "6.8", cell("Timeline", "G2"))
	assert.Equal(t, "3.4", cell("Timeline", "H2"))

	assert.Equal(t, "Key", cell("Spec Sheet", "A1"))
	assert.Equal(t, "PROJ-1", cell("Spec Sheet", "A2"))
	assert.Equal(t, "260", cell("Spec Sheet", "G2"))
	assert.Equal(t, "455", cell("Spec Sheet", "H3"))
	assert.Equal(t, "845", cell("Spec Sheet", "I3"))
	assert.Equal(t, "104", cell("Spec Sheet", "J4"))
	assert.Equal(t, "9918.48", cell("Spec Sheet", "K4"))

	rows, err := f.GetRows("Spec Sheet")
	require.NoError(t, err)
	flat := make(map[string]bool)
	for _, row := range rows {
		for _, v := range row {
			flat[v] = true
		}
	}
	assert.True(t, flat["Risk Tier"])
	assert.True(t, flat["proven"])
	assert.True(t, flat["Priority"])
	assert.True(t, flat["must_have"])
}

func TestGenerate_TimelineSummaryAndHolidays(t *testing.T) {
	buf, err := NewGenerator().Generate(sampleResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timeline")
	require.NoError(t, err)

	flat := make(map[string]bool)
	for _, row := range rows {
		for _, v := range row {
			flat[v] = true
		}
	}
	assert.True(t, flat["Total points"])
	assert.True(t, flat["complete"])
	assert.True(t, flat["Kingsday"])
	assert.True(t, flat["2026-04-27"])
}

func TestGenerate_CapacityExhaustedShowsRemaining(t *testing.T) {
	result := sampleResult()
	result.Schedule.State = domain.ScheduleCapacityExhausted
	result.Schedule.Remaining = 42

	buf, err := NewGenerator().Generate(result)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timeline")
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		for i, v := range row {
			if v == "Unallocated points" && i+1 < len(row) {
				assert.Equal(t, "42", row[i+1])
				found = true
			}
		}
	}
	assert.True(t, found, "remaining points row should be present")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, NewGenerator().WriteFile(sampleResult(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Spec Sheet")
}
