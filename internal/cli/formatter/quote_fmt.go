package formatter

import (
	"fmt"
	"strings"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// FormatQuote renders the priced backlog with per-tier totals underneath.
func FormatQuote(q domain.QuoteReport) string {
	headers := []string{"Key", "Title", "Size", "Risk", "Priority", "Price"}
	rows := make([][]string, 0, len(q.Items))
	for _, item := range q.Items {
		rows = append(rows, []string{
			StyleBold.Render(item.Key),
			truncate(item.Title, 40),
			sizeCell(item),
			RiskLabel(item.Risk),
			PriorityLabel(item.Priority),
			priceCell(item),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(formatTotals(q))
	return b.String()
}

func sizeCell(item domain.ItemQuote) string {
	if item.Risk == domain.RiskUnestimated {
		return StyleDim.Render("—")
	}
	return Points(item.Size)
}

// priceCell shows the figure matching the item's tier: a fixed price, a
// range, or an hourly estimate.
func priceCell(item domain.ItemQuote) string {
	switch item.Risk {
	case domain.RiskProven:
		return Money(item.FixedPrice)
	case domain.RiskExperimental:
		return fmt.Sprintf("%s - %s", Money(item.MinPrice), Money(item.MaxPrice))
	case domain.RiskDependant:
		return fmt.Sprintf("%s (%sh)", Money(item.EstimatedCost), Points(item.EstimatedHours))
	default:
		return StyleDim.Render("needs estimate")
	}
}

func formatTotals(q domain.QuoteReport) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(label+":"), value))
	}

	line("Tiers", fmt.Sprintf("%d proven / %d experimental / %d dependant / %d unestimated",
		q.TierCounts[domain.RiskProven], q.TierCounts[domain.RiskExperimental],
		q.TierCounts[domain.RiskDependant], q.TierCounts[domain.RiskUnestimated]))
	line("Priorities", fmt.Sprintf("%d must / %d should / %d could / %d won't",
		q.PriorityCounts[domain.PriorityMustHave], q.PriorityCounts[domain.PriorityShouldHave],
		q.PriorityCounts[domain.PriorityCouldHave], q.PriorityCounts[domain.PriorityWontHave]))
	line("Quality multiplier", fmt.Sprintf("%.2f", q.QualityMultiplier))
	line("Proven", Money(q.ProvenTotal))
	line("Experimental", fmt.Sprintf("%s - %s", Money(q.ExperimentalMin), Money(q.ExperimentalMax)))
	line("Dependant", Money(q.DependantTotal))
	line("Grand total (worst case)", StyleBold.Render(Money(q.GrandTotal)))

	if q.UnestimatedCount > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"%d item(s) lack an estimate and are excluded from all totals.", q.UnestimatedCount)))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
