package formatter

import (
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskStyle returns the style for a risk tier: green for proven work,
// yellow for experimental, red for dependant, dim for unestimated.
func RiskStyle(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.RiskProven:
		return StyleGreen
	case domain.RiskExperimental:
		return StyleYellow
	case domain.RiskDependant:
		return StyleRed
	default:
		return StyleDim
	}
}

// RiskLabel returns a colored short label such as "proven".
func RiskLabel(tier domain.RiskTier) string {
	return RiskStyle(tier).Render(string(tier))
}

// PriorityLabel returns the MoSCoW tier as a colored label.
func PriorityLabel(tier domain.PriorityTier) string {
	switch tier {
	case domain.PriorityMustHave:
		return StyleRed.Render("Must")
	case domain.PriorityShouldHave:
		return StyleYellow.Render("Should")
	case domain.PriorityCouldHave:
		return StyleBlue.Render("Could")
	case domain.PriorityWontHave:
		return StyleDim.Render("Won't")
	default:
		return StyleDim.Render(string(tier))
	}
}

// StateIndicator renders the schedule's terminal state.
func StateIndicator(state domain.ScheduleState) string {
	switch state {
	case domain.ScheduleComplete:
		return StyleGreen.Render("● COMPLETE")
	case domain.ScheduleCapacityExhausted:
		return StyleRed.Render("● CAPACITY EXHAUSTED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}
