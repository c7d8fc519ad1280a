package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// javanese is a comparable summary of a Date used by the tests.
type javanese struct {
	Dina, Pasaran, Wulan string
	Day, Year            int
	Taun, Wuku           string
}

func summarize(d Date) javanese {
	return javanese{
		Dina:    d.Dina(),
		Pasaran: d.Pasaran(),
		Wulan:   d.Wulan(),
		Day:     d.Day(),
		Year:    d.Year(),
		Taun:    d.Taun(),
		Wuku:    d.Wuku(),
	}
}

func TestNew_KnownDates(t *testing.T) {
	tests := []struct {
		date time.Time
		want javanese
	}{
		{
			date: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Setu", "Pahing", "Jumadilawal", 28, 1955, "Alip", "Marakeh"},
		},
		{
			date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Minggu", "Pahing", "Jumadilakir", 8, 1956, "Ehe", "Galungan"},
		},
		{
			date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Senen", "Pahing", "Jumadilakir", 19, 1957, "Jimawal", "Wukir"},
		},
		{
			date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Rebo", "Pon", "Rejeb", 1, 1958, "Je", "Bala"},
		},
		{
			date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Kemis", "Pon", "Rejeb", 12, 1959, "Dal", "Kuruwelut"},
		},
		{
			date: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Jemuah", "Pon", "Rejeb", 23, 1960, "Be", "Julungwangi"},
		},
		{
			date: time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Setu", "Pon", "Ruwah", 4, 1961, "Wawu", "Sinta"},
		},
		{
			date: time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
			want: javanese{"Senen", "Wage", "Ruwah", 16, 1962, "Jimakir", "Prangbakat"},
		},
		{
			date: time.Date(2023, 8, 17, 0, 0, 0, 0, time.UTC),
			want: javanese{"Kemis", "Kliwon", "Sura", 30, 1957, "Jimawal", "Langkir"},
		},
		{
			// The day before the anchor.
			date: time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
			want: javanese{"Jemuah", "Legi", "Jumadilawal", 27, 1955, "Alip", "Marakeh"},
		},
		{
			// Last day of the kabisat year before the anchor year.
			date: time.Date(2021, 8, 8, 0, 0, 0, 0, time.UTC),
			want: javanese{"Minggu", "Legi", "Besar", 30, 1954, "Jimakir", "Kulawu"},
		},
		{
			date: time.Date(2021, 8, 9, 0, 0, 0, 0, time.UTC),
			want: javanese{"Senen", "Pahing", "Sura", 1, 1955, "Alip", "Kulawu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			got := summarize(New(tt.date))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("New(%v) mismatch (-want +got):\n%s", tt.date, diff)
			}
		})
	}
}

func TestNew_Anchor(t *testing.T) {
	d := New(AnchorDate())

	if got, want := d.String(), "Setu Pahing, 28 Jumadilawal 1955 Ja, Bedhug"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if d.Month() != 4 {
		t.Errorf("Month() = %d, want 4", d.Month())
	}
	if d.WukuIndex() != 17 {
		t.Errorf("WukuIndex() = %d, want 17", d.WukuIndex())
	}
	if d.Neptu() != 18 {
		t.Errorf("Neptu() = %d, want 18", d.Neptu())
	}
	if !d.IsKabisat() {
		t.Error("IsKabisat() = false, want true for 1955")
	}
	if d.Weton() != "Setu Pahing" {
		t.Errorf("Weton() = %q, want %q", d.Weton(), "Setu Pahing")
	}
}

func TestNew_UsesLocalCalendarDay(t *testing.T) {
	// 1 January 2022 00:30 in Jakarta is still 31 December 2021 in UTC; the
	// calendar day in the instant's own location decides.
	jakarta := time.FixedZone("WIB", 7*60*60)
	d := New(time.Date(2022, 1, 1, 0, 30, 0, 0, jakarta))
	if d.Day() != 28 || d.Pasaran() != "Pahing" {
		t.Errorf("New(00:30 WIB) = %v, want 28 Jumadilawal Pahing", d)
	}

	utc := New(d.Time().UTC())
	if utc.Day() != 27 {
		t.Errorf("New(UTC) day = %d, want 27", utc.Day())
	}
}

func TestIsKabisat(t *testing.T) {
	tests := []struct {
		date time.Time
		year int
		want bool
	}{
		{time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 1955, true},
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1956, false},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1957, true},
		{time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC), 1962, true},
	}
	for _, tt := range tests {
		d := New(tt.date)
		if d.Year() != tt.year {
			t.Fatalf("Year() = %d, want %d", d.Year(), tt.year)
		}
		if d.IsKabisat() != tt.want {
			t.Errorf("IsKabisat(%d) = %v, want %v", tt.year, d.IsKabisat(), tt.want)
		}
		if IsKabisatYear(tt.year) != tt.want {
			t.Errorf("IsKabisatYear(%d) = %v, want %v", tt.year, IsKabisatYear(tt.year), tt.want)
		}
	}
}

func TestYearLength(t *testing.T) {
	total := 0
	for y := AnchorYear - 8; y < AnchorYear; y++ {
		total += YearLength(y)
	}
	if total != winduDays {
		t.Errorf("one windu = %d days, want %d", total, winduDays)
	}
	if YearLength(AnchorYear) != 355 || YearLength(AnchorYear+1) != 354 {
		t.Errorf("YearLength(1955, 1956) = %d, %d, want 355, 354",
			YearLength(AnchorYear), YearLength(AnchorYear+1))
	}
}

// TestResolveYear_MatchesPlainWalk checks the windu skip against a walk of
// one year at a time.
func TestResolveYear_MatchesPlainWalk(t *testing.T) {
	plain := func(pos int) (int, int, int) {
		year, windu := AnchorYear, anchorWindu
		for pos > polaWindu[windu] || pos <= 0 {
			if pos > polaWindu[windu] {
				pos -= polaWindu[windu]
				year++
				windu = (windu + 1) % 8
			} else {
				windu = (windu + 7) % 8
				year--
				pos += polaWindu[windu]
			}
		}
		return pos, year, windu
	}

	for pos := -3 * winduDays; pos <= 3*winduDays; pos += 13 {
		d1, y1, w1 := resolveYear(pos)
		d2, y2, w2 := plain(pos)
		if d1 != d2 || y1 != y2 || w1 != w2 {
			t.Fatalf("resolveYear(%d) = (%d, %d, %d), want (%d, %d, %d)", pos, d1, y1, w1, d2, y2, w2)
		}
	}
}

func TestNew_Invariants(t *testing.T) {
	start := time.Date(1800, 1, 1, 6, 0, 0, 0, time.UTC)
	prev := New(start.AddDate(0, 0, -1))
	for d := range Days(start, time.Date(2200, 12, 31, 0, 0, 0, 0, time.UTC)) {
		if n := d.Neptu(); n < 7 || n > 18 {
			t.Fatalf("%v: Neptu() = %d, want 7..18", d.Time(), n)
		}
		if d.Day() < 1 || d.Day() > monthLength(d.Month(), d.IsKabisat()) {
			t.Fatalf("%v: Day() = %d out of range for month %d", d.Time(), d.Day(), d.Month())
		}
		if d.Day() == 30 && d.Month()%2 == 1 && !(d.Month() == 11 && d.IsKabisat()) {
			t.Fatalf("%v: 30 %s in a 29-day month", d.Time(), d.Wulan())
		}
		if d.DinaIndex() != int(d.Time().Weekday()) {
			t.Fatalf("%v: DinaIndex() = %d, want weekday %d", d.Time(), d.DinaIndex(), d.Time().Weekday())
		}
		if d.PasaranIndex() != (prev.PasaranIndex()+1)%5 {
			t.Fatalf("%v: pasaran %s does not follow %s", d.Time(), d.Pasaran(), prev.Pasaran())
		}
		if d.TaunIndex() != winduIndex(d.Year()) {
			t.Fatalf("%v: TaunIndex() = %d, want %d", d.Time(), d.TaunIndex(), winduIndex(d.Year()))
		}

		// Consecutive days either advance the day of month or start a new
		// month, and the year only changes on 1 Sura.
		switch {
		case d.Day() == prev.Day()+1 && d.Month() == prev.Month() && d.Year() == prev.Year():
		case d.Day() == 1 && d.Month() == (prev.Month()+1)%12:
			if (d.Month() == 0) != (d.Year() == prev.Year()+1) {
				t.Fatalf("%v: year %d after %d", d.Time(), d.Year(), prev.Year())
			}
		default:
			t.Fatalf("%v: %d %s %d does not follow %d %s %d", d.Time(),
				d.Day(), d.Wulan(), d.Year(), prev.Day(), prev.Wulan(), prev.Year())
		}

		// A new wuku starts every Sunday.
		wantWuku := prev.WukuIndex()
		if d.Time().Weekday() == time.Sunday {
			wantWuku = (wantWuku + 1) % 30
		}
		if d.WukuIndex() != wantWuku {
			t.Fatalf("%v: WukuIndex() = %d, want %d", d.Time(), d.WukuIndex(), wantWuku)
		}
		prev = d
	}
}
