package database

import (
	"fmt"
	"time"

	cerrors "cloudeng.io/errors"

	"github.com/zapponejosh/tanggalan-api/internal/calendar"
)

// DateLayout is the Gregorian key format of almanac_days.
const DateLayout = "2006-01-02"

// AlmanacDay is one stored Gregorian day with its Javanese fields.
type AlmanacDay struct {
	Date    string `json:"date" yaml:"date"`
	Weekday int    `json:"weekday" yaml:"weekday"` // 0=Sunday through 6=Saturday

	Dina         string `json:"dina" yaml:"dina"`
	DinaIndex    int    `json:"dina_index" yaml:"dina_index"`
	Pasaran      string `json:"pasaran" yaml:"pasaran"`
	PasaranIndex int    `json:"pasaran_index" yaml:"pasaran_index"`
	Neptu        int    `json:"neptu" yaml:"neptu"`

	Day     int    `json:"day" yaml:"day"`
	Month   int    `json:"month" yaml:"month"` // 0=Sura through 11=Besar
	Wulan   string `json:"wulan" yaml:"wulan"`
	Year    int    `json:"year" yaml:"year"`
	Taun    string `json:"taun" yaml:"taun"`
	Kabisat bool   `json:"kabisat" yaml:"kabisat"`

	Wuku      string `json:"wuku" yaml:"wuku"`
	WukuIndex int    `json:"wuku_index" yaml:"wuku_index"`
	Mongso    string `json:"mongso" yaml:"mongso"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// NewAlmanacDay builds the row for the calendar day of d.
func NewAlmanacDay(d calendar.Date) AlmanacDay {
	t := d.Time()
	return AlmanacDay{
		Date:         t.Format(DateLayout),
		Weekday:      int(t.Weekday()),
		Dina:         d.Dina(),
		DinaIndex:    d.DinaIndex(),
		Pasaran:      d.Pasaran(),
		PasaranIndex: d.PasaranIndex(),
		Neptu:        d.Neptu(),
		Day:          d.Day(),
		Month:        d.Month(),
		Wulan:        d.Wulan(),
		Year:         d.Year(),
		Taun:         d.Taun(),
		Kabisat:      d.IsKabisat(),
		Wuku:         d.Wuku(),
		WukuIndex:    d.WukuIndex(),
		Mongso:       d.Mongso(),
	}
}

// Weton returns the day name and market day, e.g. "Setu Pahing".
func (a AlmanacDay) Weton() string {
	return a.Dina + " " + a.Pasaran
}

// Validate checks that the row is internally consistent: indexes in range
// and matching their names, and the Javanese fields agreeing with what the
// converter gives for Date. All problems are reported together.
func (a AlmanacDay) Validate() error {
	errs := cerrors.M{}

	t, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		errs.Append(fmt.Errorf("%w: date %q: %v", ErrInvalidDay, a.Date, err))
		return errs.Err()
	}
	if a.Weekday != int(t.Weekday()) {
		errs.Append(fmt.Errorf("%w: %s: weekday %d, want %d", ErrInvalidDay, a.Date, a.Weekday, t.Weekday()))
	}

	want := NewAlmanacDay(calendar.New(t))
	check := func(field string, got, want any) {
		if got != want {
			errs.Append(fmt.Errorf("%w: %s: %s is %v, want %v", ErrInvalidDay, a.Date, field, got, want))
		}
	}
	check("dina", a.Dina, want.Dina)
	check("dina_index", a.DinaIndex, want.DinaIndex)
	check("pasaran", a.Pasaran, want.Pasaran)
	check("pasaran_index", a.PasaranIndex, want.PasaranIndex)
	check("neptu", a.Neptu, want.Neptu)
	check("day", a.Day, want.Day)
	check("month", a.Month, want.Month)
	check("wulan", a.Wulan, want.Wulan)
	check("year", a.Year, want.Year)
	check("taun", a.Taun, want.Taun)
	check("kabisat", a.Kabisat, want.Kabisat)
	check("wuku", a.Wuku, want.Wuku)
	check("wuku_index", a.WukuIndex, want.WukuIndex)
	check("mongso", a.Mongso, want.Mongso)
	return errs.Err()
}

// Stats summarizes the stored range.
type Stats struct {
	Days  int    `json:"days" yaml:"days"`
	First string `json:"first,omitempty" yaml:"first,omitempty"`
	Last  string `json:"last,omitempty" yaml:"last,omitempty"`
}
