package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDays(t *testing.T) {
	start := time.Date(2022, 1, 1, 8, 0, 0, 0, time.UTC)

	var got []string
	for d := range Days(start, start.AddDate(0, 0, 4)) {
		got = append(got, d.Format("D P d"))
	}
	want := []string{
		"Setu Pahing 28",
		"Minggu Pon 29",
		"Senen Wage 30",
		"Selasa Kliwon 1",
		"Rebo Legi 2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Days() mismatch (-want +got):\n%s", diff)
	}
}

func TestDays_Empty(t *testing.T) {
	start := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)
	for d := range Days(start, start.AddDate(0, 0, -1)) {
		t.Errorf("Days() yielded %v for a reversed range", d)
	}
}

func TestDays_StopsEarly(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	for range Days(start, start.AddDate(1, 0, 0)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestNewMonthSheet(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		weeks     int
		firstCell int // weekday of the 1st
	}{
		{2022, time.January, 6, 6},
		{2026, time.February, 4, 0},
		{2024, time.February, 5, 4},
		{2023, time.August, 5, 2},
	}
	for _, tt := range tests {
		sheet := NewMonthSheet(tt.year, tt.month, nil)
		if len(sheet.Weeks) != tt.weeks {
			t.Errorf("%s %d: %d weeks, want %d", tt.month, tt.year, len(sheet.Weeks), tt.weeks)
			continue
		}
		first := sheet.Weeks[0][tt.firstCell]
		if first == nil || first.Time().Day() != 1 {
			t.Errorf("%s %d: cell %d of week 0 = %v, want the 1st", tt.month, tt.year, tt.firstCell, first)
		}
		for i := 0; i < tt.firstCell; i++ {
			if sheet.Weeks[0][i] != nil {
				t.Errorf("%s %d: cell %d of week 0 = %v, want nil", tt.month, tt.year, i, sheet.Weeks[0][i])
			}
		}
		days := sheet.Dates()
		if want := time.Date(tt.year, tt.month+1, 0, 0, 0, 0, 0, time.UTC).Day(); len(days) != want {
			t.Errorf("%s %d: %d days, want %d", tt.month, tt.year, len(days), want)
		}
		for i, d := range days {
			if d.Time().Day() != i+1 || d.Time().Month() != tt.month {
				t.Errorf("%s %d: day %d is %v", tt.month, tt.year, i+1, d.Time())
			}
		}
	}
}

func TestNewMonthSheet_JavaneseFields(t *testing.T) {
	sheet := NewMonthSheet(2023, time.August, time.FixedZone("WIB", 7*60*60))
	d := sheet.Dates()[16] // 17 August
	if got, want := d.Format("D P, d M yyyy"), "Kemis Kliwon, 30 Sura 1957"; got != want {
		t.Errorf("17 August 2023 = %q, want %q", got, want)
	}
	if sheet.Year != 2023 || sheet.Month != time.August {
		t.Errorf("sheet = %d-%s, want 2023-August", sheet.Year, sheet.Month)
	}
}
