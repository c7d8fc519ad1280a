package calendar

import (
	"fmt"
	"time"
)

// Date is a Gregorian instant together with its Javanese calendar fields.
// Dates are values; every operation that moves to another day returns a new
// Date.
type Date struct {
	t time.Time
	f fields
}

// New converts a Gregorian instant. The Javanese fields depend only on the
// calendar day of t in its own location; the time of day is kept for Wektu
// and for formatting.
func New(t time.Time) Date {
	return Date{t: t, f: convert(t)}
}

// Time returns the Gregorian instant.
func (d Date) Time() time.Time { return d.t }

// Day returns the day of the Javanese month, starting at 1.
func (d Date) Day() int { return d.f.day }

// Month returns the month index, 0 for Sura through 11 for Besar.
func (d Date) Month() int { return d.f.month }

// Year returns the Javanese year number.
func (d Date) Year() int { return d.f.year }

func (d Date) Hour() int   { return d.t.Hour() }
func (d Date) Minute() int { return d.t.Minute() }
func (d Date) Second() int { return d.t.Second() }

// Dina returns the day name.
func (d Date) Dina() string { return Dina[d.f.dina] }

// DinaIndex returns the day name index, 0 for Minggu.
func (d Date) DinaIndex() int { return d.f.dina }

// Pasaran returns the market day name.
func (d Date) Pasaran() string { return Pasaran[d.f.pasaran] }

// PasaranIndex returns the market day index, 0 for Legi.
func (d Date) PasaranIndex() int { return d.f.pasaran }

// Weton returns the day name and market day, e.g. "Setu Pahing".
func (d Date) Weton() string { return d.Dina() + " " + d.Pasaran() }

// Wulan returns the month name.
func (d Date) Wulan() string { return Wulan[d.f.month] }

// Taun returns the year name within the windu.
func (d Date) Taun() string { return Taun[d.f.windu] }

// TaunIndex returns the windu position of the year, 0 for Alip.
func (d Date) TaunIndex() int { return d.f.windu }

// Wuku returns the wuku name.
func (d Date) Wuku() string { return Wuku[d.f.wuku] }

// WukuIndex returns the wuku index, 0 for Sinta.
func (d Date) WukuIndex() int { return d.f.wuku }

// Neptu returns the sum of the day name and market day weights.
func (d Date) Neptu() int {
	return NeptuDina[d.f.dina] + NeptuPasaran[d.f.pasaran]
}

// Mongso returns the season of the Gregorian day.
func (d Date) Mongso() string { return Mongso[mongsoIndex(d.t)] }

// MongsoIndex returns the season index, 0 for Kasa.
func (d Date) MongsoIndex() int { return mongsoIndex(d.t) }

// Wektu returns the traditional name of the time of day.
func (d Date) Wektu() string { return WektuAt(d.t) }

// IsKabisat reports whether the Javanese year is a 355-day year.
func (d Date) IsKabisat() bool {
	return polaWindu[d.f.windu] == kabisatLength
}

// AddDays returns the Date n days later (or earlier for negative n), keeping
// the time of day.
func (d Date) AddDays(n int) Date {
	return New(d.t.AddDate(0, 0, n))
}

// SameDay reports whether d and o fall on the same Javanese day.
func (d Date) SameDay(o Date) bool {
	return d.f == o.f
}

// String returns e.g. "Setu Pahing, 28 Jumadilawal 1955 Ja, Bedhug".
func (d Date) String() string {
	return fmt.Sprintf("%s %s, %d %s %d Ja, %s",
		d.Dina(), d.Pasaran(), d.f.day, d.Wulan(), d.f.year, d.Wektu())
}
