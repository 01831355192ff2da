package workcal

import "time"

// WeekdaySet is a set of weekdays (Sunday = 0 .. Saturday = 6) stored as a
// bitmask so config snapshots copy by value.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Has reports whether the weekday is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Add returns the set with the weekday added.
func (s WeekdaySet) Add(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

// Remove returns the set with the weekday removed.
func (s WeekdaySet) Remove(d time.Weekday) WeekdaySet {
	return s &^ (1 << uint(d))
}

// Count returns the number of weekdays in the set.
func (s WeekdaySet) Count() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Weekdays returns the members in Sunday-first order.
func (s WeekdaySet) Weekdays() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Config is an immutable snapshot of the work-calendar settings consumed by
// the engine. The engine never mutates it; the store hands out a fresh copy
// per call.
type Config struct {
	// InitialDate is the first counted date. Nil means not configured yet.
	InitialDate *CalendarDate
	// HoursPerDay is the default hours credited to a counted date, in (0, 24].
	HoursPerDay float64
	// TotalHours is the target sum. Zero means no target, just accumulate.
	TotalHours float64
	// ExcludedWeekdays are weekdays that do not count by default. The store
	// guarantees this never covers all seven weekdays.
	ExcludedWeekdays WeekdaySet
	// CustomDays holds per-date overrides, normalized so that only dates
	// that truly deviate from the default rule are present.
	CustomDays map[CalendarDate]DayOverride
}

// DefaultHoursPerDay is the hours-per-day value of a fresh configuration.
const DefaultHoursPerDay = 8

// DefaultConfig returns the all-default configuration.
func DefaultConfig() *Config {
	return &Config{
		HoursPerDay: DefaultHoursPerDay,
		CustomDays:  make(map[CalendarDate]DayOverride),
	}
}

// Clone returns a deep copy, used by the store to hand out snapshots.
func (c *Config) Clone() *Config {
	out := *c
	if c.InitialDate != nil {
		d := *c.InitialDate
		out.InitialDate = &d
	}
	out.CustomDays = make(map[CalendarDate]DayOverride, len(c.CustomDays))
	for date, ov := range c.CustomDays {
		if ov.CustomHours != nil {
			h := *ov.CustomHours
			ov.CustomHours = &h
		}
		out.CustomDays[date] = ov
	}
	return &out
}

// Override returns the override stored for the date, if any.
func (c *Config) Override(date CalendarDate) (DayOverride, bool) {
	ov, ok := c.CustomDays[date]
	return ov, ok
}
