package workcal

import "go.uber.org/zap"

// maxAccumulateDays is the absolute ceiling on how many days a single
// range sum will iterate. It guards against corrupted configs (e.g. an
// initial date years in the future) without being a business rule.
const maxAccumulateDays = 3650

// Accumulate sums effective hours over [from, to] inclusive. A reversed
// range is treated as empty and returns 0. The iteration is capped at
// min(2 x span, 3650) days; if the cap is hit the partial sum accumulated
// so far is returned with truncated=true and a warning is logged.
func (e *Engine) Accumulate(cfg *Config, from, to CalendarDate) (hours float64, truncated bool) {
	if from.After(to) {
		return 0, false
	}

	span := from.DaysUntil(to) + 1
	limit := 2 * span
	if limit > maxAccumulateDays {
		limit = maxAccumulateDays
	}

	var total float64
	r := NewDateRange(from, to, limit)
	for {
		date, ok := r.Next()
		if !ok {
			break
		}
		res := e.Resolve(cfg, date)
		if res.Counts() {
			total += res.Hours
		}
	}

	if r.Truncated() {
		e.logger.Warn("Range accumulation hit iteration cap, returning partial sum",
			zap.String("from", from.Key()),
			zap.String("to", to.Key()),
			zap.Int("cap_days", limit))
		return total, true
	}

	return total, false
}
