package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

// checklistFile mirrors the quality-standards configuration document:
// categories of checklist items, each with a MoSCoW tag and the price
// impact it contributes.
type checklistFile struct {
	Description string `json:"description"`
	Categories  []struct {
		Name  string `json:"name"`
		Items []struct {
			Description      string  `json:"description"`
			Moscow           string  `json:"moscow"`
			ImpactPercentage float64 `json:"impact_percentage"`
		} `json:"items"`
	} `json:"categories"`
}

// LoadChecklist reads and validates the quality checklist. A missing path
// yields an empty checklist (multiplier 1.0); a malformed file or an
// out-of-range impact fraction is a configuration error.
func LoadChecklist(path string) (domain.QualityChecklist, error) {
	if path == "" {
		return domain.QualityChecklist{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.QualityChecklist{}, nil
		}
		return domain.QualityChecklist{}, fmt.Errorf("reading checklist %s: %w", path, err)
	}

	var file checklistFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return domain.QualityChecklist{}, fmt.Errorf("%w: parsing checklist %s: %v", ErrInvalidSettings, path, err)
	}

	var checklist domain.QualityChecklist
	for _, cat := range file.Categories {
		category := domain.ChecklistCategory{Name: cat.Name}
		for _, item := range cat.Items {
			category.Items = append(category.Items, domain.ChecklistItem{
				Description:    item.Description,
				Priority:       parseMoscow(item.Moscow),
				ImpactFraction: item.ImpactPercentage,
			})
		}
		checklist.Categories = append(checklist.Categories, category)
	}

	if err := checklist.Validate(); err != nil {
		return domain.QualityChecklist{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return checklist, nil
}

// parseMoscow maps the document's "Must Have" style tags onto priority
// tiers, defaulting unknowns to ShouldHave.
func parseMoscow(tag string) domain.PriorityTier {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	normalized = strings.ReplaceAll(normalized, "'", "")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	switch normalized {
	case "must have", "must":
		return domain.PriorityMustHave
	case "should have", "should":
		return domain.PriorityShouldHave
	case "could have", "could":
		return domain.PriorityCouldHave
	case "wont have", "wont":
		return domain.PriorityWontHave
	default:
		return domain.PriorityShouldHave
	}
}
