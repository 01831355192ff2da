package workcal

// ExclusionRule is the per-date exclusion override. The three cases are
// modeled explicitly instead of a nullable boolean so that "no opinion" and
// "force include" cannot be confused.
type ExclusionRule int

const (
	// Inherit defers to the global weekday rule.
	Inherit ExclusionRule = iota
	// ForceExclude excludes the date regardless of its weekday.
	ForceExclude
	// ForceInclude counts the date even if its weekday is globally excluded.
	ForceInclude
)

func (r ExclusionRule) String() string {
	switch r {
	case ForceExclude:
		return "exclude"
	case ForceInclude:
		return "include"
	default:
		return "inherit"
	}
}

// DayOverride is a per-date exception to the default counting rule. The
// zero value means "no override".
type DayOverride struct {
	Exclusion   ExclusionRule
	CustomHours *float64 // nil = use the config's hours per day
}

// Normalize returns the canonical form of the override and whether it
// deviates from the default rule at all. A force-excluded day has no
// effective hours, so any custom hours are dropped; an override equivalent
// to "no override" reports ok=false and must not be stored.
func (o DayOverride) Normalize() (DayOverride, bool) {
	if o.Exclusion == ForceExclude {
		return DayOverride{Exclusion: ForceExclude}, true
	}
	if o.Exclusion == Inherit && o.CustomHours == nil {
		return DayOverride{}, false
	}
	return o, true
}

// HoursPtr is a convenience for building overrides with custom hours.
func HoursPtr(h float64) *float64 {
	return &h
}
