package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/workcal"
	"github.com/spf13/cobra"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the base calendar settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "initial DATE",
		Short: "Set the first counted date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if err := st.SetInitialDate(date); err != nil {
				return err
			}
			fmt.Printf("Initial date set to %s\n", date.Key())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hours N",
		Short: "Set the default hours per counted day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseHoursArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if err := st.SetHoursPerDay(hours); err != nil {
				return err
			}
			fmt.Printf("Hours per day set to %.1f\n", hours)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "target N",
		Short: "Set the target total hours (0 clears the target)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseHoursArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if err := st.SetTotalHours(hours); err != nil {
				return err
			}
			if hours == 0 {
				fmt.Println("Target cleared")
			} else {
				fmt.Printf("Target set to %.1fh\n", hours)
			}
			return nil
		},
	})

	return cmd
}

func weekdayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekday",
		Short: "Manage globally excluded weekdays (0=Sunday .. 6=Saturday)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "exclude N",
		Short: "Stop counting this weekday by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseWeekdayArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if err := st.ExcludeWeekday(day); err != nil {
				return err
			}
			fmt.Printf("%s excluded\n", day)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "include N",
		Short: "Count this weekday again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseWeekdayArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if err := st.IncludeWeekday(day); err != nil {
				return err
			}
			fmt.Printf("%s included\n", day)
			return nil
		},
	})

	return cmd
}

func dayExcludeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exclude DATE",
		Short: "Force-exclude a date regardless of its weekday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOverride(args[0], workcal.DayOverride{Exclusion: workcal.ForceExclude})
		},
	}
}

func dayIncludeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "include DATE",
		Short: "Force-include a date even if its weekday is excluded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyOverride(args[0], workcal.DayOverride{Exclusion: workcal.ForceInclude})
		},
	}
}

func dayHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours DATE N",
		Short: "Assign custom hours to a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseHoursArg(args[1])
			if err != nil {
				return err
			}
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			cfg := st.Config()
			ov, _ := cfg.Override(date)
			ov.CustomHours = workcal.HoursPtr(hours)
			if ov.Exclusion == workcal.ForceExclude {
				// Assigning hours to a force-excluded day reopens it.
				ov.Exclusion = workcal.Inherit
			}
			if err := st.SetOverride(date, ov); err != nil {
				return err
			}
			fmt.Printf("%s set to %.1fh\n", date.Key(), hours)
			return nil
		},
	}
}

func dayResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset DATE",
		Short: "Remove the override for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if err := st.ClearOverride(date); err != nil {
				return err
			}
			fmt.Printf("Override for %s removed\n", date.Key())
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the calendar document as JSON (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return st.Export(os.Stdout)
			}
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()
			if err := st.Export(f); err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", args[0])
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the calendar document from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()
			if err := st.Import(f); err != nil {
				return err
			}
			fmt.Printf("Imported %s\n", args[0])
			return nil
		},
	}
}

func applyOverride(dateArg string, ov workcal.DayOverride) error {
	date, err := parseDateArg(dateArg)
	if err != nil {
		return err
	}
	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.SetOverride(date, ov); err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", date.Key(), ov.Exclusion)
	return nil
}

func parseHoursArg(s string) (float64, error) {
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours %q: %w", s, err)
	}
	return hours, nil
}

func parseWeekdayArg(s string) (time.Weekday, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 6 {
		return 0, fmt.Errorf("invalid weekday %q, want 0 (Sunday) to 6 (Saturday)", s)
	}
	return time.Weekday(n), nil
}
