// Package config resolves all run settings once, up front, into immutable
// snapshots. Downstream components only read fields; nothing performs late
// lookups with implicit defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidSettings marks configuration errors. They are fatal and
// reported before any computation starts.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the numeric knobs of the engine, loaded from the settings
// file with environment overrides and validated before a run starts.
type Settings struct {
	PricePerPoint          float64 `mapstructure:"price_per_point"`
	ExperimentalVariance   float64 `mapstructure:"experimental_variance"`
	BaseHourlyRate         float64 `mapstructure:"base_hourly_rate"`
	HourlyRateDiscount     float64 `mapstructure:"hourly_rate_discount"`
	SprintLengthDays       int     `mapstructure:"sprint_length_days"`
	SprintOverheadFraction float64 `mapstructure:"sprint_overhead_fraction"`
	BaselineWorkingDays    int     `mapstructure:"baseline_working_days"`
	ProvenThreshold        float64 `mapstructure:"proven_threshold"`
	ExperimentalThreshold  float64 `mapstructure:"experimental_threshold"`
	HoursPerPoint          float64 `mapstructure:"hours_per_point"`
	MaxSprints             int     `mapstructure:"max_sprints"`
}

// Default returns the stock settings: 2-week sprints on a 5-day week,
// 15% overhead, and the standard rate card.
func Default() Settings {
	return Settings{
		PricePerPoint:          130,
		ExperimentalVariance:   0.3,
		BaseHourlyRate:         127.16,
		HourlyRateDiscount:     0.25,
		SprintLengthDays:       14,
		SprintOverheadFraction: 0.15,
		BaselineWorkingDays:    10,
		ProvenThreshold:        3,
		ExperimentalThreshold:  8,
		HoursPerPoint:          8,
		MaxSprints:             120,
	}
}

// Load reads settings from the given file (JSON or YAML, optional) and
// SPECSHEET_* environment overrides, then validates. A missing file falls
// back to defaults; an unreadable or invalid one is a configuration error.
func Load(path string) (Settings, error) {
	v := viper.New()
	defaults := Default()
	v.SetDefault("price_per_point", defaults.PricePerPoint)
	v.SetDefault("experimental_variance", defaults.ExperimentalVariance)
	v.SetDefault("base_hourly_rate", defaults.BaseHourlyRate)
	v.SetDefault("hourly_rate_discount", defaults.HourlyRateDiscount)
	v.SetDefault("sprint_length_days", defaults.SprintLengthDays)
	v.SetDefault("sprint_overhead_fraction", defaults.SprintOverheadFraction)
	v.SetDefault("baseline_working_days", defaults.BaselineWorkingDays)
	v.SetDefault("proven_threshold", defaults.ProvenThreshold)
	v.SetDefault("experimental_threshold", defaults.ExperimentalThreshold)
	v.SetDefault("hours_per_point", defaults.HoursPerPoint)
	v.SetDefault("max_sprints", defaults.MaxSprints)

	v.SetEnvPrefix("SPECSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr == nil {
				return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
			}
			// Missing file: defaults plus env overrides.
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate enforces the sane-range contract: fractions in [0,1], strictly
// positive prices and day counts, proven threshold below experimental.
func (s Settings) Validate() error {
	checkFraction := func(name string, val float64) error {
		if val < 0 || val > 1 {
			return fmt.Errorf("%w: %s %v out of [0,1]", ErrInvalidSettings, name, val)
		}
		return nil
	}
	if err := checkFraction("experimental_variance", s.ExperimentalVariance); err != nil {
		return err
	}
	if err := checkFraction("hourly_rate_discount", s.HourlyRateDiscount); err != nil {
		return err
	}
	if err := checkFraction("sprint_overhead_fraction", s.SprintOverheadFraction); err != nil {
		return err
	}

	checkPositive := func(name string, val float64) error {
		if val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSettings, name, val)
		}
		return nil
	}
	if err := checkPositive("price_per_point", s.PricePerPoint); err != nil {
		return err
	}
	if err := checkPositive("base_hourly_rate", s.BaseHourlyRate); err != nil {
		return err
	}
	if err := checkPositive("hours_per_point", s.HoursPerPoint); err != nil {
		return err
	}
	if err := checkPositive("sprint_length_days", float64(s.SprintLengthDays)); err != nil {
		return err
	}
	if err := checkPositive("baseline_working_days", float64(s.BaselineWorkingDays)); err != nil {
		return err
	}
	if err := checkPositive("max_sprints", float64(s.MaxSprints)); err != nil {
		return err
	}

	if s.ProvenThreshold < 0 || s.ExperimentalThreshold < 0 {
		return fmt.Errorf("%w: thresholds must be non-negative", ErrInvalidSettings)
	}
	if s.ProvenThreshold >= s.ExperimentalThreshold {
		return fmt.Errorf("%w: proven_threshold %v must be below experimental_threshold %v",
			ErrInvalidSettings, s.ProvenThreshold, s.ExperimentalThreshold)
	}
	return nil
}

// EffectiveHourlyRate is the base rate minus the configured discount.
func (s Settings) EffectiveHourlyRate() float64 {
	return s.BaseHourlyRate * (1 - s.HourlyRateDiscount)
}

// Tracker holds the issue-tracker connection read from the environment.
// FixVersion optionally narrows the backlog to one release.
type Tracker struct {
	BaseURL     string
	Email       string
	APIToken    string
	ProjectKey  string
	FixVersion  string
	PointsField string
}

// LoadTracker reads tracker credentials from .env (if present) and the
// environment. BaseURL, email, token and project key are required.
func LoadTracker() (Tracker, error) {
	_ = godotenv.Load()

	t := Tracker{
		BaseURL:     os.Getenv("JIRA_BASE_URL"),
		Email:       os.Getenv("JIRA_EMAIL"),
		APIToken:    os.Getenv("JIRA_API_TOKEN"),
		ProjectKey:  os.Getenv("JIRA_PROJECT_KEY"),
		FixVersion:  os.Getenv("JIRA_FIX_VERSION"),
		PointsField: os.Getenv("JIRA_STORY_POINTS_FIELD"),
	}
	if t.PointsField == "" {
		t.PointsField = "customfield_10016"
	}

	switch {
	case t.BaseURL == "":
		return Tracker{}, fmt.Errorf("%w: JIRA_BASE_URL not set", ErrInvalidSettings)
	case t.Email == "":
		return Tracker{}, fmt.Errorf("%w: JIRA_EMAIL not set", ErrInvalidSettings)
	case t.APIToken == "":
		return Tracker{}, fmt.Errorf("%w: JIRA_API_TOKEN not set", ErrInvalidSettings)
	case t.ProjectKey == "":
		return Tracker{}, fmt.Errorf("%w: JIRA_PROJECT_KEY not set", ErrInvalidSettings)
	}
	return t, nil
}
