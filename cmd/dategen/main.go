// Command dategen prints the Javanese calendar for a Gregorian year: the
// Gregorian date of 1 Sura for each Javanese year that touches it, followed
// by a month sheet for every month.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/tanggalan-api/internal/calendar"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "Gregorian year to print")
	tz := flag.String("tz", "Asia/Jakarta", "Time zone")
	flag.Parse()

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dategen: %v\n", err)
		os.Exit(1)
	}
	if err := generate(os.Stdout, *year, loc); err != nil {
		fmt.Fprintf(os.Stderr, "dategen: %v\n", err)
		os.Exit(1)
	}
}

func generate(w io.Writer, year int, loc *time.Location) error {
	fmt.Fprintf(w, "=== Javanese Calendar for %d ===\n\n", year)

	first := calendar.New(time.Date(year, time.January, 1, 12, 0, 0, 0, loc))
	last := calendar.New(time.Date(year, time.December, 31, 12, 0, 0, 0, loc))

	fmt.Fprintln(w, "Year starts (1 Sura):")
	for y := first.Year(); y <= last.Year()+1; y++ {
		d, err := calendar.FromJavanese(y, 0, 1, 12, 0, 0, loc)
		if err != nil {
			return fmt.Errorf("1 Sura %d: %w", y, err)
		}
		kabisat := ""
		if d.IsKabisat() {
			kabisat = ", kabisat"
		}
		fmt.Fprintf(w, "  %d %-8s %s  %s (%d days%s)\n",
			y, d.Taun(), d.Time().Format("2006-01-02"), d.Weton(), calendar.YearLength(y), kabisat)
	}
	fmt.Fprintln(w)

	for m := time.January; m <= time.December; m++ {
		printSheet(w, calendar.NewMonthSheet(year, m, loc))
	}
	return nil
}

const cellWidth = 14

func printSheet(w io.Writer, s calendar.MonthSheet) {
	fmt.Fprintf(w, "--- %s %d ---\n", s.Month, s.Year)
	for _, name := range calendar.Dina {
		fmt.Fprintf(w, "%-*s", cellWidth, name)
	}
	fmt.Fprintln(w)
	for _, week := range s.Weeks {
		var top, bottom strings.Builder
		for _, d := range week {
			if d == nil {
				fmt.Fprintf(&top, "%-*s", cellWidth, "")
				fmt.Fprintf(&bottom, "%-*s", cellWidth, "")
				continue
			}
			fmt.Fprintf(&top, "%-*s", cellWidth, fmt.Sprintf("%2d %s", d.Time().Day(), d.Pasaran()))
			fmt.Fprintf(&bottom, "%-*s", cellWidth, d.Format("d/m yyyy"))
		}
		fmt.Fprintln(w, strings.TrimRight(top.String(), " "))
		fmt.Fprintln(w, strings.TrimRight(bottom.String(), " "))
	}
	fmt.Fprintln(w)
}
