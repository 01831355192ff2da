package workcal

import (
	"testing"
	"time"
)

func TestClassify_Facets(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()
	end := NewDate(2024, time.January, 5)
	ctx := DayContext{
		Today:       NewDate(2024, time.January, 10),
		ExpectedEnd: &end,
	}

	tests := []struct {
		name string
		date CalendarDate
		want func(c Classification) bool
		desc string
	}{
		{
			name: "today",
			date: NewDate(2024, time.January, 10),
			want: func(c Classification) bool { return c.IsToday && !c.IsPastAndCounted },
			desc: "IsToday set, not past",
		},
		{
			name: "initial date",
			date: NewDate(2024, time.January, 1),
			want: func(c Classification) bool { return c.IsInitialDate && c.IsPastAndCounted },
			desc: "IsInitialDate and past-counted",
		},
		{
			name: "expected end",
			date: NewDate(2024, time.January, 5),
			want: func(c Classification) bool { return c.IsExpectedEnd && !c.IsPastAndAfterExpectedEnd },
			desc: "IsExpectedEnd, not after itself",
		},
		{
			name: "past weekend not counted",
			date: NewDate(2024, time.January, 6),
			want: func(c Classification) bool { return !c.IsPastAndCounted && c.Excluded },
			desc: "excluded days never count as past-counted",
		},
		{
			name: "past day after expected end",
			date: NewDate(2024, time.January, 9),
			want: func(c Classification) bool { return c.IsPastAndCounted && c.IsPastAndAfterExpectedEnd },
			desc: "counted day between end and today",
		},
		{
			name: "before initial date",
			date: NewDate(2023, time.December, 28),
			want: func(c Classification) bool { return !c.IsPastAndCounted },
			desc: "days before the initial date are not counted progress",
		},
		{
			name: "future day",
			date: NewDate(2024, time.February, 1),
			want: func(c Classification) bool {
				return !c.IsToday && !c.IsPastAndCounted && !c.IsPastAndAfterExpectedEnd
			},
			desc: "no facets for plain future days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := engine.Classify(cfg, tt.date, ctx)
			if !tt.want(c) {
				t.Errorf("%s: got %+v", tt.desc, c)
			}
		})
	}
}

func TestClassify_NoExpectedEnd(t *testing.T) {
	engine := NewEngine(nil)
	cfg := weekendOffConfig()
	ctx := DayContext{Today: NewDate(2024, time.January, 10)}

	c := engine.Classify(cfg, NewDate(2024, time.January, 9), ctx)

	if c.IsExpectedEnd || c.IsPastAndAfterExpectedEnd {
		t.Errorf("expected-end facets set without an expected end: %+v", c)
	}
	if !c.IsPastAndCounted {
		t.Error("IsPastAndCounted = false for a counted past day")
	}
}
