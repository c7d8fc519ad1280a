package calendar

import (
	"iter"
	"time"
)

// Days yields the Date of every Gregorian day from start through end
// inclusive, keeping the time of day of start. Nothing is yielded when start
// falls on a later day than end.
func Days(start, end time.Time) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		last := dayOffset(end.In(start.Location()))
		for t := start; dayOffset(t) <= last; t = t.AddDate(0, 0, 1) {
			if !yield(New(t)) {
				return
			}
		}
	}
}

// MonthSheet is a Gregorian month laid out in Sunday-first weeks, as on a
// printed wall calendar, with the Javanese date of every day.
type MonthSheet struct {
	Year  int
	Month time.Month

	// Weeks has one row per week the month touches (four to six). Cells
	// outside the month are nil.
	Weeks [][7]*Date
}

// NewMonthSheet lays out the given Gregorian month. Days are taken at noon
// in loc; a nil loc means UTC.
func NewMonthSheet(year int, month time.Month, loc *time.Location) MonthSheet {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 12, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	sheet := MonthSheet{Year: first.Year(), Month: first.Month()}
	var week [7]*Date
	for d := range Days(first, last) {
		wd := d.DinaIndex()
		week[wd] = &d
		if wd == int(time.Saturday) {
			sheet.Weeks = append(sheet.Weeks, week)
			week = [7]*Date{}
		}
	}
	if week != [7]*Date{} {
		sheet.Weeks = append(sheet.Weeks, week)
	}
	return sheet
}

// Dates returns the days of the sheet in order.
func (s MonthSheet) Dates() []Date {
	var out []Date
	for _, week := range s.Weeks {
		for _, d := range week {
			if d != nil {
				out = append(out, *d)
			}
		}
	}
	return out
}
