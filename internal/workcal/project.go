package workcal

import (
	"math"

	"go.uber.org/zap"
)

// rollForwardLimit bounds the walk off an excluded candidate end date.
// 366 days covers a full year of exclusions before giving up.
const rollForwardLimit = 366

// Projection is the result of an end-date projection. Date is nil when
// there is nothing to project (no initial date or no target). Uncertain is
// set when an iteration cap forced a best-effort fallback.
type Projection struct {
	Date      *CalendarDate
	Uncertain bool
}

// ProjectEndDate finds the first date at which accumulated hours reach the
// configured target.
//
// Phase A walks forward from the initial date adding each day's effective
// hours until the running total reaches the target; the crossing day
// contributes its whole hours, there is no partial-day pro-rating. Phase B
// then rolls the candidate forward past excluded days so the reported end
// date is always one that actually counts.
func (e *Engine) ProjectEndDate(cfg *Config) Projection {
	if cfg.InitialDate == nil || cfg.TotalHours <= 0 {
		return Projection{}
	}

	limit := phaseALimit(cfg.TotalHours, cfg.HoursPerDay)

	var (
		total   float64
		current CalendarDate
	)
	walk := NewDateWalk(*cfg.InitialDate, limit)
	for total < cfg.TotalHours {
		date, ok := walk.Next()
		if !ok {
			// Target unreachable within the bound (e.g. every day resolves
			// to zero hours). Fall back to the last date reached.
			e.logger.Warn("End-date projection hit iteration cap before reaching target",
				zap.Float64("target_hours", cfg.TotalHours),
				zap.Float64("accumulated_hours", total),
				zap.Int("cap_days", limit))
			return Projection{Date: &current, Uncertain: true}
		}
		current = date
		res := e.Resolve(cfg, date)
		if res.Counts() {
			total += res.Hours
		}
	}

	return e.rollForward(cfg, current)
}

// rollForward advances past excluded days so the displayed end date is a
// countable one.
func (e *Engine) rollForward(cfg *Config, candidate CalendarDate) Projection {
	walk := NewDateWalk(candidate, rollForwardLimit)
	for {
		date, ok := walk.Next()
		if !ok {
			today := Today()
			e.logger.Warn("No countable date found after candidate end date",
				zap.String("candidate", candidate.Key()))
			return Projection{Date: &today, Uncertain: true}
		}
		if e.Resolve(cfg, date).Counts() {
			return Projection{Date: &date}
		}
	}
}

// phaseALimit bounds the accumulation walk relative to how many default
// days the target would need, leaving generous room for excluded and
// reduced-hour days.
func phaseALimit(totalHours, hoursPerDay float64) int {
	if hoursPerDay <= 0 {
		return maxAccumulateDays
	}
	return int(math.Ceil(totalHours/(hoursPerDay*0.5))) * 2
}
