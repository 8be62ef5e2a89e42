package cli

import (
	"fmt"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build the sprint timeline from the current backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			firstStart, err := resolveStart(start)
			if err != nil {
				return err
			}

			result, err := app.Plan.BuildPlan(cmd.Context(), firstStart)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSchedule(result.Schedule))
			if len(result.Holidays) > 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatHolidays(result.Holidays))
			}
			for _, name := range result.SkippedHolidays {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("Skipped holiday %q: end date before start date", name)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First sprint start date (YYYY-MM-DD), defaults to next Monday")

	return cmd
}

func newQuoteCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price the current backlog by risk tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			firstStart, err := resolveStart(start)
			if err != nil {
				return err
			}

			result, err := app.Plan.BuildPlan(cmd.Context(), firstStart)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuote(result.Quote))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First sprint start date (YYYY-MM-DD), defaults to next Monday")

	return cmd
}

func newReportCmd(app *App) *cobra.Command {
	var start, out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the timeline and spec sheet to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			firstStart, err := resolveStart(start)
			if err != nil {
				return err
			}

			result, err := app.Plan.BuildPlan(cmd.Context(), firstStart)
			if err != nil {
				return err
			}
			if err := app.Report.WriteFile(result, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d sprints, %d items)\n",
				out, result.Schedule.Sprints(), len(result.Backlog))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First sprint start date (YYYY-MM-DD), defaults to next Monday")
	cmd.Flags().StringVar(&out, "out", "specsheet.xlsx", "Output file path")

	return cmd
}

// resolveStart parses the --start flag, defaulting to the next Monday so a
// fresh plan never starts mid-sprint or in the past.
func resolveStart(flag string) (time.Time, error) {
	if flag != "" {
		start, err := time.Parse(dateLayout, flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid start date %q: %w", flag, err)
		}
		return start, nil
	}
	return nextMonday(time.Now().UTC()), nil
}

func nextMonday(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Monday {
			return day
		}
	}
}
