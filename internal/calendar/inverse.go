package calendar

import (
	"fmt"
	"time"
)

// FromJavanese returns the Date of day (1-based) in month monthIndex (0 for
// Sura) of the Javanese year, at the given time of day in loc. A nil loc
// means UTC.
func FromJavanese(year, monthIndex, day, hour, minute, second int, loc *time.Location) (Date, error) {
	if monthIndex < 0 || monthIndex >= len(Wulan) {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidJavaneseDate, monthIndex+1)
	}
	if n := monthLength(monthIndex, IsKabisatYear(year)); day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: %s %d has %d days, got %d",
			ErrInvalidJavaneseDate, Wulan[monthIndex], year, n, day)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Date{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidGregorian, hour, minute, second)
	}
	if loc == nil {
		loc = time.UTC
	}

	offset := dayOfAnchorYear(year, monthIndex, day) - anchorDayOfYear
	g := anchorDate.AddDate(0, 0, offset)
	y, m, dd := g.Date()
	return New(time.Date(y, m, dd, hour, minute, second, 0, loc)), nil
}

// dayOfAnchorYear counts days from the start of AnchorYear, so that the
// first day of AnchorYear is 1 and days before it are zero or negative.
func dayOfAnchorYear(year, monthIndex, day int) int {
	total := 0

	// Whole windus, then single years.
	windus := floorDiv(year-AnchorYear, len(polaWindu))
	total += windus * winduDays
	for y := AnchorYear + windus*len(polaWindu); y < year; y++ {
		total += polaWindu[winduIndex(y)]
	}

	// Months before monthIndex never include Besar, so the kabisat
	// adjustment does not apply here.
	for i := 0; i < monthIndex; i++ {
		total += wulanLength[i]
	}
	return total + day
}
