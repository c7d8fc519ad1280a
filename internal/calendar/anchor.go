package calendar

import "time"

// Anchor constants. Every conversion is an offset from this one known
// correspondence:
//
//	1 January 2022 = Setu Pahing, 28 Jumadilawal 1955 (Alip), wuku Marakeh
//
// 28 Jumadilawal is day 146 of the year (30+29+30+29+28), and 1955 sits at
// position 0 of the windu.
const (
	// AnchorYear is the Javanese year containing the anchor day.
	AnchorYear = 1955

	// anchorDayOfYear is the 1-based position of the anchor day in AnchorYear.
	anchorDayOfYear = 146

	// anchorWindu is the windu position (index into Taun) of AnchorYear.
	anchorWindu = 0

	// anchorWuku is the wuku index of the anchor week.
	anchorWuku = 17

	// anchorPasaran is the pasaran index of the anchor day minus one; the
	// pasaran of a day is (anchorPasaran + offset) mod 5.
	anchorPasaran = 1
)

// anchorDate is the Gregorian anchor day at noon UTC. Inputs are normalized
// to noon UTC of their own calendar day before the day offset is taken.
var anchorDate = time.Date(2022, time.January, 1, 12, 0, 0, 0, time.UTC)

// AnchorDate returns the Gregorian day the calendar arithmetic is anchored to.
func AnchorDate() time.Time {
	return anchorDate
}

const secondsPerDay = 24 * 60 * 60

// dayOffset returns the whole number of days from the anchor day to the
// calendar day of t, as seen in t's own location. Unix seconds keep offsets
// beyond ~292 years from saturating.
func dayOffset(t time.Time) int {
	y, m, d := t.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return int((noon.Unix() - anchorDate.Unix()) / secondsPerDay)
}

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the Euclidean remainder of a/b for b > 0.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
