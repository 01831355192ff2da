package workcal

// DayContext carries the reference dates a display classification is
// computed against.
type DayContext struct {
	Today       CalendarDate
	ExpectedEnd *CalendarDate
}

// Classification is a Resolution plus the display facets the presentation
// layer combines into a visual style. The facets are independent booleans;
// precedence between them is a presentation decision.
type Classification struct {
	Resolution
	IsToday                   bool
	IsInitialDate             bool
	IsExpectedEnd             bool
	IsPastAndCounted          bool
	IsPastAndAfterExpectedEnd bool
}

// Classify resolves a date and attaches its display facets.
func (e *Engine) Classify(cfg *Config, date CalendarDate, ctx DayContext) Classification {
	res := e.Resolve(cfg, date)

	c := Classification{
		Resolution: res,
		IsToday:    date == ctx.Today,
	}
	if cfg.InitialDate != nil && date == *cfg.InitialDate {
		c.IsInitialDate = true
	}
	if ctx.ExpectedEnd != nil && date == *ctx.ExpectedEnd {
		c.IsExpectedEnd = true
	}
	if date.Before(ctx.Today) && res.Counts() {
		onOrAfterStart := cfg.InitialDate == nil || !date.Before(*cfg.InitialDate)
		if onOrAfterStart {
			c.IsPastAndCounted = true
			if ctx.ExpectedEnd != nil && date.After(*ctx.ExpectedEnd) {
				c.IsPastAndAfterExpectedEnd = true
			}
		}
	}
	return c
}
