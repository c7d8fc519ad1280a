package calendar

import "time"

// fields holds everything derived from a Gregorian calendar day.
type fields struct {
	dina    int
	pasaran int
	wuku    int
	windu   int // index into Taun
	year    int
	month   int // index into Wulan
	day     int // 1-based day of month
}

// convert resolves the Javanese fields of the calendar day of t.
func convert(t time.Time) fields {
	offset := dayOffset(t)

	f := fields{
		dina:    int(t.Weekday()),
		pasaran: mod(anchorPasaran+offset, pasaranCycle),
		wuku:    mod(anchorWuku+floorDiv(offset+6, daysPerWeek), wukuCycle),
	}

	dayOfYear, year, windu := resolveYear(anchorDayOfYear + offset)
	f.year, f.windu = year, windu
	f.month, f.day = resolveMonth(dayOfYear, polaWindu[windu] == kabisatLength)
	return f
}

// resolveYear walks the windu pattern from the anchor year until pos, a
// 1-based day count relative to the start of AnchorYear, falls inside a
// single year. It returns the day of that year, the year and its windu
// position.
func resolveYear(pos int) (dayOfYear, year, windu int) {
	year, windu = AnchorYear, anchorWindu

	// Whole windus first; AnchorYear starts a windu so the pattern stays
	// aligned. What is left lies within [1, winduDays].
	if skip := floorDiv(pos-1, winduDays); skip != 0 {
		pos -= skip * winduDays
		year += skip * len(polaWindu)
	}

	for {
		length := polaWindu[windu]
		switch {
		case pos > length:
			pos -= length
			year++
			windu = (windu + 1) % len(polaWindu)
		case pos <= 0:
			windu = mod(windu-1, len(polaWindu))
			year--
			pos += polaWindu[windu]
		default:
			return pos, year, windu
		}
	}
}

// resolveMonth splits a 1-based day of year into a month index and a 1-based
// day of month.
func resolveMonth(dayOfYear int, kabisat bool) (month, day int) {
	for month = 0; month < len(Wulan)-1; month++ {
		n := monthLength(month, kabisat)
		if dayOfYear <= n {
			break
		}
		dayOfYear -= n
	}
	return month, dayOfYear
}

// winduIndex returns the windu position of a Javanese year.
func winduIndex(year int) int {
	return mod(anchorWindu+year-AnchorYear, len(polaWindu))
}

// IsKabisatYear reports whether the Javanese year has 355 days.
func IsKabisatYear(year int) bool {
	return polaWindu[winduIndex(year)] == kabisatLength
}

// YearLength returns the number of days in the Javanese year.
func YearLength(year int) int {
	return polaWindu[winduIndex(year)]
}
