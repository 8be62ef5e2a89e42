package pricing

import "github.com/bvanleeuwen/specsheet/internal/domain"

// Inputs is the immutable pricing snapshot for one run, resolved from the
// validated settings before any computation starts. Calculators only read
// fields off this struct; there are no late lookups with implicit
// defaults.
type Inputs struct {
	PricePerPoint         float64
	ExperimentalVariance  float64
	BaseHourlyRate        float64
	HourlyRateDiscount    float64
	HoursPerPoint         float64
	ProvenThreshold       float64
	ExperimentalThreshold float64
	QualityMultiplier     float64
	RiskRules             []TagRule
}

// EffectiveHourlyRate is the configured base rate minus the discount.
func (in Inputs) EffectiveHourlyRate() float64 {
	return in.BaseHourlyRate * (1 - in.HourlyRateDiscount)
}

// QuoteItem prices a single backlog item according to its risk tier.
// Proven gets a fixed price, experimental a range around the same center,
// dependant an hourly estimate. The quality multiplier applies to proven
// and experimental only; dependant pricing reflects time actually spent.
func QuoteItem(item domain.BacklogItem, in Inputs) domain.ItemQuote {
	quote := domain.ItemQuote{
		Key:      item.Key,
		Title:    item.Title,
		EpicKey:  item.EpicKey,
		Risk:     ClassifyRisk(item, in.RiskRules, in.ProvenThreshold, in.ExperimentalThreshold),
		Priority: ClassifyPriority(item),
	}

	size, ok := item.SizedPoints()
	if !ok || quote.Risk == domain.RiskUnestimated {
		return quote
	}
	quote.Size = size

	basePrice := size * in.PricePerPoint
	center := basePrice * in.QualityMultiplier

	switch quote.Risk {
	case domain.RiskProven:
		quote.FixedPrice = center
	case domain.RiskExperimental:
		quote.MinPrice = center * (1 - in.ExperimentalVariance)
		quote.MaxPrice = center * (1 + in.ExperimentalVariance)
	case domain.RiskDependant:
		quote.EstimatedHours = size * in.HoursPerPoint
		quote.EstimatedCost = quote.EstimatedHours * in.EffectiveHourlyRate()
	}
	return quote
}

// BuildReport prices the whole backlog and aggregates per-tier and
// per-priority totals. The grand total sums the proven fixed prices, the
// experimental maxima, and the dependant estimates, making it a worst-case
// figure. Unestimated items are counted, never priced.
func BuildReport(backlog domain.Backlog, in Inputs) domain.QuoteReport {
	report := domain.QuoteReport{
		QualityMultiplier: in.QualityMultiplier,
		TierCounts:        make(map[domain.RiskTier]int),
		TierPoints:        make(map[domain.RiskTier]float64),
		PriorityCounts:    make(map[domain.PriorityTier]int),
		PriorityPoints:    make(map[domain.PriorityTier]float64),
	}

	for _, item := range backlog {
		quote := QuoteItem(item, in)
		report.Items = append(report.Items, quote)

		report.TierCounts[quote.Risk]++
		report.TierPoints[quote.Risk] += quote.Size
		report.PriorityCounts[quote.Priority]++
		report.PriorityPoints[quote.Priority] += quote.Size

		switch quote.Risk {
		case domain.RiskProven:
			report.ProvenTotal += quote.FixedPrice
		case domain.RiskExperimental:
			report.ExperimentalMin += quote.MinPrice
			report.ExperimentalMax += quote.MaxPrice
		case domain.RiskDependant:
			report.DependantTotal += quote.EstimatedCost
		case domain.RiskUnestimated:
			report.UnestimatedCount++
		}
	}

	report.GrandTotal = report.ProvenTotal + report.ExperimentalMax + report.DependantTotal
	return report
}
