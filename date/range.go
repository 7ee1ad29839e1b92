package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange return a well known period
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// GridRange returns the range of whole weeks covering the period containing d.
// A monthly grid starts on the Sunday on or before the first of the month and
// ends on the Saturday on or after its last day.
func GridRange(d Date, period Period) Range {
	r := NewRange(d, period)
	return Range{From: r.From.StartOf(Weekly), To: r.To.EndOf(Weekly)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days iterates over every day of the range.
func (r Range) Days() iter.Seq[Date] { return r.From.Days(r.To) }

// Len returns the number of days in the range.
func (r Range) Len() int { return r.From.DaysUntil(r.To) + 1 }

// Name the range, using the month name for a monthly range.
func (r Range) Name() string {
	switch {
	case r.From == r.To:
		return r.From.Format("Monday, January 2, 2006")
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return r.From.Format("January 2006")
	default:
		return fmt.Sprintf("%s to %s", r.From.Format("Jan 2"), r.To.Format("Jan 2, 2006"))
	}
}
