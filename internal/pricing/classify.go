// Package pricing classifies backlog items into risk and priority tiers
// and turns them into fixed, ranged, or hourly quotes.
package pricing

import (
	"strings"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// TagRule maps a set of tracker labels to a risk tier. Rules are checked
// in order and the first match wins, so listing the riskiest tier first
// makes the highest-risk label win when an item carries several.
type TagRule struct {
	Tier domain.RiskTier
	Tags []string
}

// DefaultRiskRules is the rule table seeded from the tracker label
// conventions, including the dependant/dependent spelling variants.
func DefaultRiskRules() []TagRule {
	return []TagRule{
		{Tier: domain.RiskDependant, Tags: []string{"dependant", "dependent", "high-risk", "external"}},
		{Tier: domain.RiskExperimental, Tags: []string{"experimental", "moderate-risk", "research"}},
		{Tier: domain.RiskProven, Tags: []string{"proven", "low-risk", "fixed"}},
	}
}

// ClassifyRisk resolves the item's risk tier: explicit tag match first
// (case-insensitive), then the size thresholds. An item without a
// parseable size is unestimated no matter how it is tagged; every priced
// tier needs a size, and pricing it at zero would understate the total.
func ClassifyRisk(item domain.BacklogItem, rules []TagRule, provenThreshold, experimentalThreshold float64) domain.RiskTier {
	size, ok := item.SizedPoints()
	if !ok {
		return domain.RiskUnestimated
	}

	for _, rule := range rules {
		for _, want := range rule.Tags {
			for _, tag := range item.Tags {
				if strings.EqualFold(tag, want) {
					return rule.Tier
				}
			}
		}
	}

	switch {
	case size <= provenThreshold:
		return domain.RiskProven
	case size <= experimentalThreshold:
		return domain.RiskExperimental
	default:
		return domain.RiskDependant
	}
}

// priorityTags maps explicit labels to priority tiers, checked in order.
var priorityTags = []struct {
	Tier domain.PriorityTier
	Tags []string
}{
	{domain.PriorityMustHave, []string{"must", "must-have"}},
	{domain.PriorityShouldHave, []string{"should", "should-have"}},
	{domain.PriorityCouldHave, []string{"could", "could-have"}},
	{domain.PriorityWontHave, []string{"wont", "wont-have", "out-of-scope"}},
}

// trackerPriorities maps the tracker's native priority names.
var trackerPriorities = map[string]domain.PriorityTier{
	"highest": domain.PriorityMustHave,
	"blocker": domain.PriorityMustHave,
	"high":    domain.PriorityShouldHave,
	"major":   domain.PriorityShouldHave,
	"medium":  domain.PriorityCouldHave,
	"normal":  domain.PriorityCouldHave,
	"low":     domain.PriorityWontHave,
	"minor":   domain.PriorityWontHave,
	"trivial": domain.PriorityWontHave,
}

// ClassifyPriority resolves the item's priority tier: explicit label
// first, then the tracker's native priority, defaulting to ShouldHave.
func ClassifyPriority(item domain.BacklogItem) domain.PriorityTier {
	for _, rule := range priorityTags {
		for _, want := range rule.Tags {
			for _, tag := range item.Tags {
				if strings.EqualFold(tag, want) {
					return rule.Tier
				}
			}
		}
	}
	if tier, ok := trackerPriorities[strings.ToLower(item.Priority)]; ok {
		return tier
	}
	return domain.PriorityShouldHave
}
