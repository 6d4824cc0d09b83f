package labor

import "time"

// =============================================================================
// DAY - Calendar-day value (all engine dates are day-granular)
// =============================================================================

// Day is a calendar day. The zero value means "no date".
type Day struct {
	t time.Time
}

// NewDay constructs a Day from year/month/day.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates a timestamp to its calendar day (wall-clock date).
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// Comparison
func (d Day) Before(other Day) bool        { return d.t.Before(other.t) }
func (d Day) After(other Day) bool         { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool         { return d.t.Equal(other.t) }
func (d Day) BeforeOrEqual(other Day) bool { return !d.After(other) }
func (d Day) AfterOrEqual(other Day) bool  { return !d.Before(other) }

// Arithmetic and properties
func (d Day) AddDays(n int) Day     { return Day{t: d.t.AddDate(0, 0, n)} }
func (d Day) IsZero() bool          { return d.t.IsZero() }
func (d Day) Time() time.Time       { return d.t }
func (d Day) Year() int             { return d.t.Year() }
func (d Day) Month() time.Month     { return d.t.Month() }
func (d Day) DayOfMonth() int       { return d.t.Day() }
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

func (d Day) String() string { return d.t.Format("2006-01-02") }

// DaysBetween returns the number of calendar days from 'from' to 'to'.
func DaysBetween(from, to Day) int { return int(to.t.Sub(from.t).Hours() / 24) }

// =============================================================================
// DATE RANGE
// =============================================================================

// DateRange is an inclusive [Start, End] span of calendar days.
type DateRange struct {
	Start Day
	End   Day
}

// Contains reports whether day falls within the range.
func (r DateRange) Contains(day Day) bool {
	return day.AfterOrEqual(r.Start) && day.BeforeOrEqual(r.End)
}

// Len returns the number of days in the range (0 if End precedes Start).
func (r DateRange) Len() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return DaysBetween(r.Start, r.End) + 1
}

// Days returns every day in the range, in order. Written iteratively; the
// cost model is O(days x employees) and ranges are caller-bounded.
func (r DateRange) Days() []Day {
	var days []Day
	for current := r.Start; current.BeforeOrEqual(r.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}
