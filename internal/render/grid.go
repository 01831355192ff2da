package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/workcal"
	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/pkg/dateutil"
)

// Marker is the single-character day style shown next to each day number
// in the month grid.
type Marker byte

const (
	MarkerNone        Marker = ' '
	MarkerToday       Marker = '*'
	MarkerInitial     Marker = '>'
	MarkerExpectedEnd Marker = '!'
	MarkerExcluded    Marker = 'x'
	MarkerZeroHours   Marker = '0'
	MarkerCustomHours Marker = '~'
	MarkerCounted     Marker = '.'
	MarkerOverrun     Marker = '+'
)

// MarkerFor picks the display marker for a classified day. Highest
// precedence wins: today, then initial date, then expected end, then
// exclusion, then hour deviations, then past counted days (split into
// before and after the expected end).
func MarkerFor(c workcal.Classification) Marker {
	switch {
	case c.IsToday:
		return MarkerToday
	case c.IsInitialDate:
		return MarkerInitial
	case c.IsExpectedEnd:
		return MarkerExpectedEnd
	case c.Kind == workcal.DayExcluded:
		return MarkerExcluded
	case c.Kind == workcal.DayZeroHours:
		return MarkerZeroHours
	case c.Kind == workcal.DayCustomHours:
		return MarkerCustomHours
	case c.IsPastAndAfterExpectedEnd:
		return MarkerOverrun
	case c.IsPastAndCounted:
		return MarkerCounted
	default:
		return MarkerNone
	}
}

// MonthOptions selects the month to draw and the reference dates used for
// day styling.
type MonthOptions struct {
	Year     int
	Month    time.Month
	Today    workcal.CalendarDate
	Selected *workcal.CalendarDate
}

// gridCells is the fixed number of cells in the month view, six full weeks.
const gridCells = 42

// Month draws a Monday-first month grid. Each cell shows the day number,
// its style marker, and square brackets around the selected date.
func Month(engine *workcal.Engine, cfg *workcal.Config, opts MonthOptions) string {
	proj := engine.ProjectEndDate(cfg)
	ctx := workcal.DayContext{Today: opts.Today, ExpectedEnd: proj.Date}

	first := workcal.NewDate(opts.Year, opts.Month, 1)
	start := workcal.DateOf(dateutil.StartOfWeek(first.Time(time.Local)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", opts.Month, opts.Year)
	b.WriteString(" Mon   Tue   Wed   Thu   Fri   Sat   Sun\n")

	date := start
	for i := 0; i < gridCells; i++ {
		c := engine.Classify(cfg, date, ctx)
		marker := MarkerFor(c)
		if date.Month != opts.Month {
			marker = MarkerNone
		}

		left, right := byte(' '), byte(' ')
		if opts.Selected != nil && date == *opts.Selected {
			left, right = '[', ']'
		}
		fmt.Fprintf(&b, "%c%2d%c%c ", left, date.Day, byte(marker), right)

		if (i+1)%7 == 0 {
			b.WriteByte('\n')
		}
		date = date.Next()
	}

	return b.String()
}

// Legend explains the grid markers.
func Legend() string {
	return strings.Join([]string{
		"Legend: * today   > initial date   ! expected end   x excluded",
		"        0 zero hours   ~ custom hours   . counted   + past expected end",
		"        [ ] selected date",
	}, "\n")
}

// Summary renders the running-total block shown under the grid and by the
// status command. Missing prerequisites render as prompts, not failures.
func Summary(engine *workcal.Engine, cfg *workcal.Config, asOf workcal.CalendarDate) string {
	if cfg.InitialDate == nil {
		return "No initial date configured. Set one with: timeleft set initial YYYY-MM-DD"
	}

	var b strings.Builder
	accumulated, truncated := engine.Accumulate(cfg, *cfg.InitialDate, asOf)
	fmt.Fprintf(&b, "Accumulated %s to %s: %.1fh\n", cfg.InitialDate.Key(), asOf.Key(), accumulated)
	if truncated {
		b.WriteString("  (range too large, sum is partial)\n")
	}

	if cfg.TotalHours <= 0 {
		b.WriteString("No target set; tracking running total only.")
		return b.String()
	}

	remaining := cfg.TotalHours - accumulated
	if remaining < 0 {
		remaining = 0
	}
	fmt.Fprintf(&b, "Target: %.1fh, remaining: %.1fh\n", cfg.TotalHours, remaining)

	proj := engine.ProjectEndDate(cfg)
	if proj.Date != nil {
		fmt.Fprintf(&b, "Expected end date: %s", proj.Date.Key())
		if proj.Uncertain {
			b.WriteString(" (uncertain: target may be unreachable with current rules)")
		}
	}
	return b.String()
}
