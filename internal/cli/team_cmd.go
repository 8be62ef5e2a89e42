package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/cli/formatter"
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage team members",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamUpdateCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var name, role, days string
	var fte, velocity, rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.Interactive {
				if err := runMemberForm(&name, &role, &fte, &velocity, &rate); err != nil {
					return err
				}
			}

			m := &domain.TeamMember{
				Name:         name,
				Role:         role,
				FTE:          fte,
				BaseVelocity: velocity,
				HourlyRate:   rate,
			}
			if days != "" {
				mask, err := parseWeekdays(days)
				if err != nil {
					return err
				}
				m.WorkingWeekdays = mask
			}

			if err := app.Team.AddMember(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s pts/sprint at %s FTE)\n",
				m.Name, formatter.Points(m.BaseVelocity), formatter.Points(m.FTE))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "Developer", "Role")
	cmd.Flags().Float64Var(&fte, "fte", 1.0, "Full-time fraction [0,1]")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "Base velocity in points per sprint")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")
	cmd.Flags().StringVar(&days, "days", "", "Working weekdays, e.g. mon,tue,wed,thu,fri")

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := app.Team.ListTeam(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeam(team))
			return nil
		},
	}
}

func newTeamUpdateCmd(app *App) *cobra.Command {
	var fte, velocity, rate float64
	var role, days string

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Team.GetMember(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("fte") {
				m.FTE = fte
			}
			if cmd.Flags().Changed("velocity") {
				m.BaseVelocity = velocity
			}
			if cmd.Flags().Changed("rate") {
				m.HourlyRate = rate
			}
			if cmd.Flags().Changed("role") {
				m.Role = role
			}
			if cmd.Flags().Changed("days") {
				mask, err := parseWeekdays(days)
				if err != nil {
					return err
				}
				m.WorkingWeekdays = mask
			}

			if err := app.Team.UpdateMember(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", m.Name)
			return nil
		},
	}

	cmd.Flags().Float64Var(&fte, "fte", 0, "Full-time fraction [0,1]")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "Base velocity in points per sprint")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&days, "days", "", "Working weekdays, e.g. mon,tue,wed,thu,fri")

	return cmd
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a team member and their personal holidays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Team.RemoveMember(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func runMemberForm(name, role *string, fte, velocity, rate *float64) error {
	fteStr := "1.0"
	velocityStr := ""
	rateStr := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name).Validate(validateRequired),
			huh.NewInput().Title("Role").Placeholder("Developer").Value(role),
			huh.NewInput().Title("FTE [0,1]").Value(&fteStr).Validate(validateFloat),
			huh.NewInput().Title("Velocity (pts/sprint)").Placeholder("8").
				Value(&velocityStr).Validate(validateFloat),
			huh.NewInput().Title("Hourly rate").Placeholder("95.37").
				Value(&rateStr).Validate(validateFloat),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	*fte, _ = strconv.ParseFloat(fteStr, 64)
	*velocity, _ = strconv.ParseFloat(velocityStr, 64)
	*rate, _ = strconv.ParseFloat(rateStr, 64)
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validateFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// parseWeekdays turns "mon,tue,fri" into a weekday mask.
func parseWeekdays(spec string) (map[time.Weekday]bool, error) {
	mask := make(map[time.Weekday]bool)
	for _, part := range strings.Split(spec, ",") {
		key := strings.ToLower(strings.TrimSpace(part))
		if len(key) > 3 {
			key = key[:3]
		}
		day, ok := weekdayNames[key]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		mask[day] = true
	}
	return mask, nil
}
