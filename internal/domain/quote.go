package domain

// ItemQuote is the priced view of a single backlog item. Exactly one of
// the price groups is populated, driven by the risk tier: FixedPrice for
// proven, MinPrice/MaxPrice for experimental, EstimatedHours/EstimatedCost
// for dependant. Unestimated items carry no figures at all.
type ItemQuote struct {
	Key      string
	Title    string
	EpicKey  string
	Size     float64
	Risk     RiskTier
	Priority PriorityTier

	FixedPrice     float64
	MinPrice       float64
	MaxPrice       float64
	EstimatedHours float64
	EstimatedCost  float64
}

// QuoteReport aggregates item quotes into per-tier and per-priority totals.
// GrandTotal mixes the fixed proven sum with experimental upper bounds and
// dependant estimates, so it is explicitly a worst-case figure.
type QuoteReport struct {
	Items []ItemQuote

	QualityMultiplier float64

	ProvenTotal     float64
	ExperimentalMin float64
	ExperimentalMax float64
	DependantTotal  float64
	GrandTotal      float64

	TierCounts     map[RiskTier]int
	TierPoints     map[RiskTier]float64
	PriorityCounts map[PriorityTier]int
	PriorityPoints map[PriorityTier]float64

	UnestimatedCount int
}
