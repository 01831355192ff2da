package workcal

import (
	"testing"
	"time"
)

func TestDayOverride_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		override     DayOverride
		wantDeviates bool
		want         DayOverride
	}{
		{
			name:         "empty override is dropped",
			override:     DayOverride{},
			wantDeviates: false,
		},
		{
			name:         "force exclude kept",
			override:     DayOverride{Exclusion: ForceExclude},
			wantDeviates: true,
			want:         DayOverride{Exclusion: ForceExclude},
		},
		{
			name:         "force exclude clears custom hours",
			override:     DayOverride{Exclusion: ForceExclude, CustomHours: HoursPtr(4)},
			wantDeviates: true,
			want:         DayOverride{Exclusion: ForceExclude},
		},
		{
			name:         "force include kept",
			override:     DayOverride{Exclusion: ForceInclude},
			wantDeviates: true,
			want:         DayOverride{Exclusion: ForceInclude},
		},
		{
			name:         "custom hours kept",
			override:     DayOverride{CustomHours: HoursPtr(2)},
			wantDeviates: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, deviates := tt.override.Normalize()
			if deviates != tt.wantDeviates {
				t.Fatalf("deviates = %v, want %v", deviates, tt.wantDeviates)
			}
			if !deviates {
				return
			}
			if got.Exclusion != tt.override.Exclusion && got.Exclusion != tt.want.Exclusion {
				t.Errorf("Exclusion = %v", got.Exclusion)
			}
			if tt.want.CustomHours == nil && tt.override.Exclusion == ForceExclude && got.CustomHours != nil {
				t.Errorf("CustomHours = %v, want nil after force exclude", *got.CustomHours)
			}
		})
	}
}

func TestWeekdaySet(t *testing.T) {
	s := NewWeekdaySet(time.Sunday, time.Saturday)

	if !s.Has(time.Sunday) || !s.Has(time.Saturday) {
		t.Error("set missing members")
	}
	if s.Has(time.Wednesday) {
		t.Error("set has Wednesday")
	}
	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2", s.Count())
	}

	s = s.Add(time.Wednesday)
	if !s.Has(time.Wednesday) || s.Count() != 3 {
		t.Errorf("after Add: %v", s.Weekdays())
	}

	s = s.Remove(time.Sunday)
	if s.Has(time.Sunday) || s.Count() != 2 {
		t.Errorf("after Remove: %v", s.Weekdays())
	}

	// Removing an absent member is a no-op.
	if s.Remove(time.Sunday) != s {
		t.Error("Remove of absent member changed the set")
	}
}

func TestConfig_CloneIsIndependent(t *testing.T) {
	cfg := weekendOffConfig()
	date := NewDate(2024, time.January, 3)
	cfg.CustomDays[date] = DayOverride{CustomHours: HoursPtr(4)}

	clone := cfg.Clone()

	clone.HoursPerDay = 6
	*clone.InitialDate = NewDate(2030, time.June, 1)
	*clone.CustomDays[date].CustomHours = 99
	clone.CustomDays[date] = DayOverride{Exclusion: ForceExclude}

	if cfg.HoursPerDay != 8 {
		t.Errorf("original HoursPerDay mutated: %v", cfg.HoursPerDay)
	}
	if *cfg.InitialDate != NewDate(2024, time.January, 1) {
		t.Errorf("original InitialDate mutated: %v", *cfg.InitialDate)
	}
	if ov := cfg.CustomDays[date]; ov.Exclusion != Inherit || *ov.CustomHours != 4 {
		t.Errorf("original override mutated: %+v", ov)
	}
}
