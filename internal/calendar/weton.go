package calendar

import (
	"fmt"
	"strings"
)

// Selapan is the length in days of the combined dina and pasaran cycle.
const Selapan = daysPerWeek * pasaranCycle

// ParseWeton splits a weton such as "Setu Pahing" into its day name and
// market day indices. Matching is case-insensitive.
func ParseWeton(weton string) (dina, pasaran int, err error) {
	parts := strings.Fields(weton)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeton, weton)
	}
	if dina = lookup(Dina[:], parts[0]); dina < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownDayName, parts[0])
	}
	if pasaran = lookup(Pasaran[:], parts[1]); pasaran < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownMarketDay, parts[1])
	}
	return dina, pasaran, nil
}

// WetonSabanjure returns the next Date strictly after d whose weton is the
// given "Dina Pasaran". Asking for d's own weton returns the day one selapan
// (35 days) later.
func (d Date) WetonSabanjure(weton string) (Date, error) {
	dina, pasaran, err := ParseWeton(weton)
	if err != nil {
		return Date{}, err
	}
	return d.AddDays(daysUntil(d.f.dina, d.f.pasaran, dina, pasaran)), nil
}

// daysUntil returns the smallest positive number of days that moves the
// weton (fromDina, fromPasaran) to (toDina, toPasaran).
func daysUntil(fromDina, fromPasaran, toDina, toPasaran int) int {
	n := mod(toDina-fromDina, daysPerWeek)
	if n == 0 {
		n = daysPerWeek
	}
	// 7 and 5 are coprime so this takes at most five steps.
	for (fromPasaran+n)%pasaranCycle != toPasaran {
		n += daysPerWeek
	}
	return n
}
