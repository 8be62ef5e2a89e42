package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"variance above one", func(s *Settings) { s.ExperimentalVariance = 1.5 }},
		{"negative discount", func(s *Settings) { s.HourlyRateDiscount = -0.1 }},
		{"overhead above one", func(s *Settings) { s.SprintOverheadFraction = 2 }},
		{"zero price per point", func(s *Settings) { s.PricePerPoint = 0 }},
		{"negative hourly rate", func(s *Settings) { s.BaseHourlyRate = -1 }},
		{"zero hours per point", func(s *Settings) { s.HoursPerPoint = 0 }},
		{"zero sprint length", func(s *Settings) { s.SprintLengthDays = 0 }},
		{"zero baseline days", func(s *Settings) { s.BaselineWorkingDays = 0 }},
		{"zero max sprints", func(s *Settings) { s.MaxSprints = 0 }},
		{"thresholds inverted", func(s *Settings) { s.ProvenThreshold = 9 }},
		{"thresholds equal", func(s *Settings) { s.ProvenThreshold = 8 }},
		{"negative threshold", func(s *Settings) { s.ProvenThreshold = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{
		"price_per_point": 150,
		"sprint_length_days": 7,
		"baseline_working_days": 5
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 150, s.PricePerPoint, 1e-9)
	assert.Equal(t, 7, s.SprintLengthDays)
	assert.Equal(t, 5, s.BaselineWorkingDays)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 0.3, s.ExperimentalVariance, 1e-9)
}

func TestLoad_InvalidFileFailsFast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"experimental_variance": 3}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestEffectiveHourlyRate(t *testing.T) {
	s := Default()
	// 127.16 × (1 − 0.25)
	assert.InDelta(t, 95.37, s.EffectiveHourlyRate(), 1e-9)
}

func TestLoadChecklist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dod.json")
	body := `{
		"categories": [
			{
				"name": "Code quality",
				"items": [
					{"description": "Reviewed via pull requests", "moscow": "Must Have", "impact_percentage": 0.03},
					{"description": "Structured and modular", "moscow": "Should Have", "impact_percentage": 0.04}
				]
			},
			{
				"name": "Performance",
				"items": [
					{"description": "Load tested", "moscow": "Won't Have", "impact_percentage": 0.07}
				]
			}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	checklist, err := LoadChecklist(path)
	require.NoError(t, err)
	require.Len(t, checklist.Categories, 2)
	assert.Equal(t, "Code quality", checklist.Categories[0].Name)
	// 1 + 0.03 + 0.04; the won't-have item is excluded.
	assert.InDelta(t, 1.07, checklist.Multiplier(), 1e-9)
}

func TestLoadChecklist_MissingPathIsEmpty(t *testing.T) {
	checklist, err := LoadChecklist("")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, checklist.Multiplier(), 1e-9)
}

func TestLoadChecklist_OutOfRangeImpactFailsFast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dod.json")
	body := `{"categories": [{"name": "X", "items": [{"description": "bad", "moscow": "Must Have", "impact_percentage": 1.4}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadChecklist(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}
