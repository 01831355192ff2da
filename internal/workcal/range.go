package workcal

// DateRange walks calendar days from a start date, one day at a time, with
// a hard limit on how many days it will ever produce. The limit is part of
// the iterator so termination is guaranteed by construction rather than by
// a counter at each call site.
type DateRange struct {
	next      CalendarDate
	end       CalendarDate
	bounded   bool
	remaining int
	truncated bool
}

// NewDateRange creates an iterator over [from, to] inclusive producing at
// most maxDays dates. If the span exceeds maxDays the iterator stops early
// and reports Truncated.
func NewDateRange(from, to CalendarDate, maxDays int) *DateRange {
	return &DateRange{
		next:      from,
		end:       to,
		bounded:   true,
		remaining: maxDays,
	}
}

// NewDateWalk creates an open-ended iterator starting at from, producing at
// most maxDays dates. Callers stop it themselves when their own condition
// is met; running into the limit reports Truncated.
func NewDateWalk(from CalendarDate, maxDays int) *DateRange {
	return &DateRange{
		next:      from,
		remaining: maxDays,
	}
}

// Next returns the next date in the sequence. ok is false once the range
// end or the day limit has been reached.
func (r *DateRange) Next() (d CalendarDate, ok bool) {
	if r.bounded && r.next.After(r.end) {
		return CalendarDate{}, false
	}
	if r.remaining <= 0 {
		r.truncated = true
		return CalendarDate{}, false
	}
	d = r.next
	r.next = r.next.Next()
	r.remaining--
	return d, true
}

// Truncated reports whether the iterator hit its day limit before reaching
// the natural end of the range.
func (r *DateRange) Truncated() bool {
	return r.truncated
}
