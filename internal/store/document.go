package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sergio-D-Vico-Pineda/TimeLeftCalendar/internal/workcal"
)

// document is the serialized form of the work-calendar configuration. The
// field names and shapes are a fixed contract shared with the export/import
// format, so the engine types are never serialized directly.
type document struct {
	InitialDate      *string                `json:"initialDate"`
	HoursPerDay      float64                `json:"hoursPerDay"`
	TotalHours       float64                `json:"totalHours"`
	ExcludedWeekdays []int                  `json:"excludedWeekdays"`
	CustomDays       map[string]dayOverride `json:"customDays"`
}

// dayOverride mirrors workcal.DayOverride with JSON-friendly optionals. A
// nil Excluded defers to the weekday rule; false forces inclusion.
type dayOverride struct {
	Excluded    *bool    `json:"excluded,omitempty"`
	CustomHours *float64 `json:"customHours,omitempty"`
}

// decode validates the document and builds the in-memory config. Overrides
// equivalent to "no override" are dropped and force-excluded days lose any
// custom hours, so the resulting map is canonical regardless of what the
// file contained.
func (doc *document) decode() (*workcal.Config, error) {
	cfg := workcal.DefaultConfig()

	if doc.HoursPerDay <= 0 || doc.HoursPerDay > 24 {
		return nil, fmt.Errorf("hoursPerDay must be in (0, 24], got %v", doc.HoursPerDay)
	}
	cfg.HoursPerDay = doc.HoursPerDay

	if doc.TotalHours < 0 {
		return nil, fmt.Errorf("totalHours must not be negative, got %v", doc.TotalHours)
	}
	cfg.TotalHours = doc.TotalHours

	if doc.InitialDate != nil {
		date, err := workcal.ParseDate(*doc.InitialDate)
		if err != nil {
			return nil, fmt.Errorf("invalid initialDate: %w", err)
		}
		cfg.InitialDate = &date
	}

	for _, wd := range doc.ExcludedWeekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("excludedWeekdays entry out of range: %d", wd)
		}
		cfg.ExcludedWeekdays = cfg.ExcludedWeekdays.Add(time.Weekday(wd))
	}
	if cfg.ExcludedWeekdays.Count() == 7 {
		return nil, fmt.Errorf("excludedWeekdays must not cover all seven weekdays")
	}

	for key, ov := range doc.CustomDays {
		date, err := workcal.ParseDate(key)
		if err != nil {
			return nil, fmt.Errorf("invalid customDays key: %w", err)
		}
		if ov.CustomHours != nil && (*ov.CustomHours < 0 || *ov.CustomHours > 24) {
			return nil, fmt.Errorf("customHours for %s must be in [0, 24], got %v", key, *ov.CustomHours)
		}

		rule := workcal.Inherit
		if ov.Excluded != nil {
			if *ov.Excluded {
				rule = workcal.ForceExclude
			} else {
				rule = workcal.ForceInclude
			}
		}
		normalized, deviates := workcal.DayOverride{
			Exclusion:   rule,
			CustomHours: ov.CustomHours,
		}.Normalize()
		if deviates {
			cfg.CustomDays[date] = normalized
		}
	}

	return cfg, nil
}

// encode builds the serialized form of a config.
func encode(cfg *workcal.Config) *document {
	doc := &document{
		HoursPerDay: cfg.HoursPerDay,
		TotalHours:  cfg.TotalHours,
		CustomDays:  make(map[string]dayOverride, len(cfg.CustomDays)),
	}

	if cfg.InitialDate != nil {
		key := cfg.InitialDate.Key()
		doc.InitialDate = &key
	}

	for _, wd := range cfg.ExcludedWeekdays.Weekdays() {
		doc.ExcludedWeekdays = append(doc.ExcludedWeekdays, int(wd))
	}
	sort.Ints(doc.ExcludedWeekdays)

	for date, ov := range cfg.CustomDays {
		out := dayOverride{CustomHours: ov.CustomHours}
		switch ov.Exclusion {
		case workcal.ForceExclude:
			excluded := true
			out.Excluded = &excluded
			out.CustomHours = nil
		case workcal.ForceInclude:
			excluded := false
			out.Excluded = &excluded
		}
		doc.CustomDays[date.Key()] = out
	}

	return doc
}
