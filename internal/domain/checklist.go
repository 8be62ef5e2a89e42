package domain

import "fmt"

// ChecklistItem is one delivery-quality standard with its priority tag and
// the price surcharge it contributes.
type ChecklistItem struct {
	Description    string
	Priority       PriorityTier
	ImpactFraction float64
}

// ChecklistCategory groups checklist items under a heading.
type ChecklistCategory struct {
	Name  string
	Items []ChecklistItem
}

// QualityChecklist is the read-only quality-standards configuration.
type QualityChecklist struct {
	Categories []ChecklistCategory
}

// Multiplier is 1 + Σ impact_fraction over all items not tagged WontHave.
// Impacts are additive, not compounded.
func (c QualityChecklist) Multiplier() float64 {
	total := 1.0
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if item.Priority == PriorityWontHave {
				continue
			}
			total += item.ImpactFraction
		}
	}
	return total
}

// Validate checks every impact fraction lies in [0,1].
func (c QualityChecklist) Validate() error {
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if item.ImpactFraction < 0 || item.ImpactFraction > 1 {
				return fmt.Errorf("checklist item %q: impact fraction %v out of [0,1]",
					item.Description, item.ImpactFraction)
			}
		}
	}
	return nil
}
