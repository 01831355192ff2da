package main

import (
	"fmt"
	"time"

	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/render"
	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/workcal"
	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/pkg/dateutil"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	var onDate string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show accumulated hours and the remaining target",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, engine, err := openStore()
			if err != nil {
				return err
			}

			asOf := workcal.Today()
			if onDate != "" {
				asOf, err = parseDateArg(onDate)
				if err != nil {
					return err
				}
			}

			fmt.Println(render.Summary(engine, st.Config(), asOf))
			return nil
		},
	}

	cmd.Flags().StringVar(&onDate, "on", "", "Accumulate up to this date instead of today")

	return cmd
}

func projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Show the date the target total will be reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, engine, err := openStore()
			if err != nil {
				return err
			}
			cfg := st.Config()

			if cfg.InitialDate == nil {
				fmt.Println("No initial date configured. Set one with: timeleft set initial YYYY-MM-DD")
				return nil
			}
			if cfg.TotalHours <= 0 {
				fmt.Println("No target configured. Set one with: timeleft set target HOURS")
				return nil
			}

			proj := engine.ProjectEndDate(cfg)
			if proj.Date == nil {
				fmt.Println("Nothing to project")
				return nil
			}
			fmt.Printf("Expected end date: %s\n", proj.Date.Key())
			if proj.Uncertain {
				fmt.Println("Warning: target may be unreachable with current rules; date is a best effort")
			}
			return nil
		},
	}
}

func dayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day DATE",
		Short: "Show how a single date is counted, or manage its override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			st, engine, err := openStore()
			if err != nil {
				return err
			}
			cfg := st.Config()

			proj := engine.ProjectEndDate(cfg)
			c := engine.Classify(cfg, date, workcal.DayContext{
				Today:       workcal.Today(),
				ExpectedEnd: proj.Date,
			})

			fmt.Printf("%s (%s)\n", date.Key(), date.Weekday())
			fmt.Printf("  Classification: %s\n", c.Kind)
			fmt.Printf("  Effective hours: %.1f\n", c.Hours)
			if ov, ok := cfg.Override(date); ok {
				fmt.Printf("  Override: %s", ov.Exclusion)
				if ov.CustomHours != nil {
					fmt.Printf(", %.1fh", *ov.CustomHours)
				}
				fmt.Println()
			}
			for _, facet := range []struct {
				set  bool
				name string
			}{
				{c.IsToday, "today"},
				{c.IsInitialDate, "initial date"},
				{c.IsExpectedEnd, "expected end date"},
				{c.IsPastAndCounted, "past, counted"},
				{c.IsPastAndAfterExpectedEnd, "past the expected end"},
			} {
				if facet.set {
					fmt.Printf("  %s\n", facet.name)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(dayExcludeCmd())
	cmd.AddCommand(dayIncludeCmd())
	cmd.AddCommand(dayHoursCmd())
	cmd.AddCommand(dayResetCmd())

	return cmd
}

func monthCmd() *cobra.Command {
	var selected string

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Render the month grid with day markers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := workcal.Today()
			year, month := today.Year, today.Month
			if len(args) == 1 {
				t, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, want YYYY-MM: %w", args[0], err)
				}
				year, month = t.Year(), t.Month()
			}

			st, engine, err := openStore()
			if err != nil {
				return err
			}
			cfg := st.Config()

			opts := render.MonthOptions{Year: year, Month: month, Today: today}
			if selected != "" {
				sel, err := parseDateArg(selected)
				if err != nil {
					return err
				}
				opts.Selected = &sel
			}

			fmt.Println(render.Month(engine, cfg, opts))
			fmt.Println(render.Legend())
			fmt.Println()
			fmt.Println(render.Summary(engine, cfg, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&selected, "select", "", "Highlight this date in the grid")

	return cmd
}

// parseDateArg accepts any of the supported input formats and reduces the
// result to a calendar day.
func parseDateArg(s string) (workcal.CalendarDate, error) {
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return workcal.CalendarDate{}, err
	}
	return workcal.DateOf(t), nil
}
