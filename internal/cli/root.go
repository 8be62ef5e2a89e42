// Package cli wires the cobra command tree over the planning services.
package cli

import (
	"github.com/bvanleeuwen/specsheet/internal/report"
	"github.com/bvanleeuwen/specsheet/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Team     service.TeamService
	Holidays service.HolidayService
	Plan     service.PlanService
	Report   *report.Generator

	// Interactive enables huh forms for missing inputs; false when
	// stdin is not a terminal.
	Interactive bool
}

// NewRootCmd creates the top-level "specsheet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "specsheet",
		Short: "Sprint timeline and risk-based quote generator",
	}

	root.AddCommand(
		newTeamCmd(app),
		newHolidayCmd(app),
		newPlanCmd(app),
		newQuoteCmd(app),
		newReportCmd(app),
	)

	return root
}
