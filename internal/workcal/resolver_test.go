package workcal

import (
	"testing"
	"time"
)

// weekendOffConfig is the recurring test fixture: counting starts Monday
// 2024-01-01 at 8h/day toward 40h, with weekends excluded.
func weekendOffConfig() *Config {
	initial := NewDate(2024, time.January, 1)
	return &Config{
		InitialDate:      &initial,
		HoursPerDay:      8,
		TotalHours:       40,
		ExcludedWeekdays: NewWeekdaySet(time.Sunday, time.Saturday),
		CustomDays:       make(map[CalendarDate]DayOverride),
	}
}

func TestResolve_NormalDay(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()

	res := engine.Resolve(cfg, NewDate(2024, time.January, 2)) // Tuesday

	if res.Kind != DayNormal {
		t.Errorf("Kind = %v, want normal", res.Kind)
	}
	if res.Hours != 8 {
		t.Errorf("Hours = %v, want 8", res.Hours)
	}
	if !res.Counts() {
		t.Error("Counts() = false, want true")
	}
}

func TestResolve_GloballyExcludedWeekday(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()

	res := engine.Resolve(cfg, NewDate(2024, time.January, 6)) // Saturday

	if res.Kind != DayExcluded || !res.Excluded {
		t.Errorf("Resolve(Saturday) = %+v, want excluded", res)
	}
	if res.Hours != 0 {
		t.Errorf("Hours = %v, want 0 for excluded day", res.Hours)
	}
}

func TestResolve_ForceExcludeWinsOverWeekday(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()
	wednesday := NewDate(2024, time.January, 3)
	cfg.CustomDays[wednesday] = DayOverride{Exclusion: ForceExclude}

	res := engine.Resolve(cfg, wednesday)

	if res.Kind != DayExcluded {
		t.Errorf("Kind = %v, want excluded", res.Kind)
	}
	if res.Hours != 0 {
		t.Errorf("Hours = %v, want 0", res.Hours)
	}
}

func TestResolve_ForceIncludeCancelsWeekdayExclusion(t *testing.T) {
	engine := NewEngine(nil)
	// Mondays globally excluded, but 2024-01-08 (a Monday) force-included.
	initial := NewDate(2024, time.January, 1)
	monday := NewDate(2024, time.January, 8)
	cfg := &Config{
		InitialDate:      &initial,
		HoursPerDay:      8,
		ExcludedWeekdays: NewWeekdaySet(time.Monday),
		CustomDays: map[CalendarDate]DayOverride{
			monday: {Exclusion: ForceInclude},
		},
	}

	res := engine.Resolve(cfg, monday)

	if res.Excluded {
		t.Error("Excluded = true, want custom inclusion to cancel the weekday rule")
	}
	if res.Hours != cfg.HoursPerDay {
		t.Errorf("Hours = %v, want %v", res.Hours, cfg.HoursPerDay)
	}

	// A different Monday without an override stays excluded.
	other := engine.Resolve(cfg, NewDate(2024, time.January, 15))
	if !other.Excluded {
		t.Error("plain Monday not excluded")
	}
}

func TestResolve_CustomHours(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name      string
		hours     float64
		wantKind  DayKind
		wantHours float64
	}{
		{"reduced hours", 4, DayCustomHours, 4},
		{"zero hours", 0, DayZeroHours, 0},
		{"same as default", 8, DayNormal, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weekendOffConfig()
			tuesday := NewDate(2024, time.January, 2)
			cfg.CustomDays[tuesday] = DayOverride{CustomHours: HoursPtr(tt.hours)}

			res := engine.Resolve(cfg, tuesday)

			if res.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", res.Kind, tt.wantKind)
			}
			if res.Hours != tt.wantHours {
				t.Errorf("Hours = %v, want %v", res.Hours, tt.wantHours)
			}
		})
	}
}

func TestResolve_CustomHoursIgnoredOnExcludedDay(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()
	saturday := NewDate(2024, time.January, 6)
	// Not a canonical stored form, but resolution must not credit hours to
	// an excluded day even if the map contains them.
	cfg.CustomDays[saturday] = DayOverride{CustomHours: HoursPtr(4)}

	res := engine.Resolve(cfg, saturday)

	if !res.Excluded || res.Hours != 0 {
		t.Errorf("Resolve = %+v, want excluded with 0 hours", res)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()
	date := NewDate(2024, time.January, 3)

	first := engine.Resolve(cfg, date)
	second := engine.Resolve(cfg, date)

	if first != second {
		t.Errorf("repeated Resolve differs: %+v vs %+v", first, second)
	}
}

func TestResolve_AllWeekdaysExcludedDoesNotPanic(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()
	cfg.ExcludedWeekdays = NewWeekdaySet(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)

	// The store never persists this, but the engine must degrade to "no
	// date ever counts" rather than crash.
	for day := 1; day <= 7; day++ {
		res := engine.Resolve(cfg, NewDate(2024, time.January, day))
		if !res.Excluded {
			t.Errorf("day %d not excluded under full exclusion", day)
		}
	}
}
