package finance

import (
	"fmt"
	"math"
	"time"
)

// MonthKey is the canonical month representation used to join a recurring
// expense's payment history against a target month.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Str   string     `json:"str"` // "YYYY-MM"
}

// MonthKeyFor returns the month key of t
func MonthKeyFor(t time.Time) MonthKey {
	return MonthKey{
		Year:  t.Year(),
		Month: t.Month(),
		Str:   fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())),
	}
}

// Start returns midnight on the first day of the month
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.Local)
}

// ParseMonthKey parses a "YYYY-MM" string back into a month key
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthKeyFor(t), nil
}

// Period is an inclusive date range with start at 00:00:00.000 and end at
// 23:59:59.999 of its boundary days
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period, boundaries included
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDayNanos is the nanosecond component of 23:59:59.999.
const endOfDayNanos = 999_000_000

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, endOfDayNanos, t.Location())
}

// MonthPeriod returns the full calendar month containing t
func MonthPeriod(t time.Time) Period {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return Period{Start: first, End: endOfDay(last)}
}

// RangeThisMonth returns the calendar month containing now
func RangeThisMonth(now time.Time) Period {
	return MonthPeriod(now)
}

// RangeLastMonth returns the calendar month before the one containing now
func RangeLastMonth(now time.Time) Period {
	return MonthPeriod(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0))
}

// RangeThisYear returns the calendar year containing now
func RangeThisYear(now time.Time) Period {
	return Period{
		Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())),
	}
}

// RangeAllTime returns the sentinel all-history range. The bounds are
// deliberately year 2000-2100 rather than an open interval so comparisons
// against stored dates behave the same as every other range.
func RangeAllTime(now time.Time) Period {
	return Period{
		Start: time.Date(2000, time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   endOfDay(time.Date(2100, time.December, 31, 0, 0, 0, 0, now.Location())),
	}
}

// RangeFor resolves a named range. Recognized names are this_month,
// last_month, this_year and all_time.
func RangeFor(name string, now time.Time) (Period, bool) {
	switch name {
	case "this_month":
		return RangeThisMonth(now), true
	case "last_month":
		return RangeLastMonth(now), true
	case "this_year":
		return RangeThisYear(now), true
	case "all_time":
		return RangeAllTime(now), true
	}
	return Period{}, false
}

// IsOverdue reports whether date's calendar day is strictly before now's
// calendar day. Each value's day is read in its own location; comparing the
// components rather than stripped instants keeps a UTC-dated record and a
// local now on the same calendar day from flagging as overdue.
func IsOverdue(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// DaysBetween returns the rounded number of days from a to b. Negative when
// b is before a.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
