package cli

import (
	"fmt"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/cli/formatter"
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage holidays",
	}

	cmd.AddCommand(
		newHolidayAddCmd(app),
		newHolidayListCmd(app),
		newHolidayImportCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var name, start, end, member string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a holiday, team-wide or for one member",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			if end == "" {
				end = start
			}
			endDate, err := time.Parse(dateLayout, end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			h := &domain.HolidayEntry{Name: name, Start: startDate, End: endDate}
			if member == "" {
				err = app.Holidays.AddNational(cmd.Context(), h)
			} else {
				err = app.Holidays.AddPersonal(cmd.Context(), member, h)
			}
			if err != nil {
				return err
			}

			scope := "team-wide"
			if member != "" {
				scope = member
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) for %s\n", h.Name, h.ID, scope)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holiday name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date, defaults to start")
	cmd.Flags().StringVar(&member, "member", "", "Member name; empty for team-wide")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			national, err := app.Holidays.ListNational(cmd.Context())
			if err != nil {
				return err
			}
			team, err := app.Team.ListTeam(cmd.Context())
			if err != nil {
				return err
			}

			entries := national
			for _, m := range team.Members {
				for _, h := range m.PersonalHolidays {
					h.Members = []string{m.Name}
					entries = append(entries, h)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidays(entries))
			return nil
		},
	}
}

func newHolidayImportCmd(app *App) *cobra.Command {
	var year int
	var country string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a year of public holidays as team-wide entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			count, err := app.Holidays.ImportNational(cmd.Context(), year, country)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d holidays for %s %d\n", count, country, year)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year, defaults to the current year")
	cmd.Flags().StringVar(&country, "country", "", "ISO country code, e.g. NL")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a holiday by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Holidays.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed")
			return nil
		},
	}
}
