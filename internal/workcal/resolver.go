package workcal

import "go.uber.org/zap"

// DayKind classifies a date under the counting rules.
type DayKind int

const (
	// DayExcluded does not count and contributes no hours.
	DayExcluded DayKind = iota + 1
	// DayZeroHours counts but contributes zero hours.
	DayZeroHours
	// DayCustomHours counts with per-date hours different from the default.
	DayCustomHours
	// DayNormal counts with the default hours per day.
	DayNormal
)

func (k DayKind) String() string {
	switch k {
	case DayExcluded:
		return "excluded"
	case DayZeroHours:
		return "zero-hours"
	case DayCustomHours:
		return "custom-hours"
	case DayNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Resolution is the engine's verdict for a single date.
type Resolution struct {
	Kind     DayKind
	Hours    float64 // effective hours, 0 for excluded dates
	Excluded bool
}

// Counts reports whether the date contributes to range sums.
func (r Resolution) Counts() bool {
	return !r.Excluded
}

// Engine evaluates the work-calendar counting rules. All methods are pure
// over their config and date arguments; the logger is only used for
// degraded-path diagnostics.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine. A nil logger is replaced with a no-op one.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Resolve decides whether a date counts and for how many hours.
//
// Rule order, each step overriding the previous: a per-date override is
// looked up first; a ForceInclude override cancels the global weekday
// exclusion; a ForceExclude override wins over everything; custom hours
// apply only when the date is not excluded.
func (e *Engine) Resolve(cfg *Config, date CalendarDate) Resolution {
	override, hasOverride := cfg.Override(date)

	customIncluded := hasOverride && override.Exclusion == ForceInclude
	globallyExcluded := cfg.ExcludedWeekdays.Has(date.Weekday()) && !customIncluded
	customExcluded := hasOverride && override.Exclusion == ForceExclude
	excluded := globallyExcluded || customExcluded

	if excluded {
		return Resolution{Kind: DayExcluded, Excluded: true}
	}

	hours := cfg.HoursPerDay
	hasCustomHours := hasOverride && override.CustomHours != nil
	if hasCustomHours {
		hours = *override.CustomHours
	}

	kind := DayNormal
	switch {
	case hours == 0:
		kind = DayZeroHours
	case hasCustomHours && hours != cfg.HoursPerDay:
		kind = DayCustomHours
	}

	return Resolution{Kind: kind, Hours: hours}
}
