package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	d := New(AnchorDate()) // 2022-01-01 12:00 UTC

	tests := []struct {
		layout string
		want   string
	}{
		{"D P, dd M yyyy", "Setu Pahing, 28 Jumadilawal 1955"},
		{"WK, d-m-yyyy T", "Bedhug, 28-5-1955 Alip"},
		{"mm/dd HH:MM:SS Z", "05/28 12:00:00 +0000"},
		{"W N MS", "Marakeh 18 Kapitu"},
		{"Day: D, Month: M", "Day: Setu, Month: Jumadilawal"},
		{"[yyyy] (m) {d}", "[1955] (5) {28}"},
		{"no tokens here", "no tokens here"},
	}
	for _, tt := range tests {
		if got := d.Format(tt.layout); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.layout, got, tt.want)
		}
	}
}

func TestFormat_Padding(t *testing.T) {
	d, err := FromJavanese(1958, 0, 3, 7, 5, 9, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Format("dd-mm-yyyy HH:MM:SS"), "03-01-1958 07:05:09"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if got, want := d.Format("d-m-yyyy"), "3-1-1958"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_YearPadding(t *testing.T) {
	d := New(time.Date(1050, 6, 1, 0, 0, 0, 0, time.UTC))
	if got, want := d.Format("d M yyyy"), "11 Sura 0954"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	got, err := Parse(d.Format("d M yyyy"), "d M yyyy")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Year() != 954 || !got.SameDay(d) {
		t.Errorf("Parse() = %v, want %v", got, d)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		value, layout string
		want          time.Time
	}{
		{"28 Jumadilawal 1955", "d M yyyy", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Setu Pahing, 28 Jumadilawal 1955", "D P, dd M yyyy", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Pahing, 28 Jumadilawal 1955", "P, d M yyyy", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"28 jumadilawal 1955 PAHING", "d M yyyy P", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"28 Jumadilawal 1955 14:30:00", "d M yyyy HH:MM:SS", time.Date(2022, 1, 1, 14, 30, 0, 0, time.UTC)},
		{"28 Jumadilawal 1955 12:00:00 +0700", "d M yyyy HH:MM:SS Z", time.Date(2022, 1, 1, 5, 0, 0, 0, time.UTC)},
		{"1 Bakda Mulud 1955", "d M yyyy", time.Date(2021, 11, 6, 0, 0, 0, 0, time.UTC)},
		{"1955-05-28", "yyyy-mm-dd", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"30 Sura 1957", "d M yyyy", time.Date(2023, 8, 17, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d, err := Parse(tt.value, tt.layout)
			if err != nil {
				t.Fatalf("Parse(%q, %q) error = %v", tt.value, tt.layout, err)
			}
			if !d.Time().Equal(tt.want) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tt.value, tt.layout, d.Time(), tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		value, layout string
		want          error
	}{
		{"Legi, 28 Jumadilawal 1955", "P, d M yyyy", ErrMarketDayMismatch},
		{"Setu Legi, 28 Jumadilawal 1955", "D P, dd M yyyy", ErrMarketDayMismatch},
		{"Senen Pahing, 28 Jumadilawal 1955", "D P, dd M yyyy", ErrDayNameMismatch},
		{"Manis, 28 Jumadilawal 1955", "P, d M yyyy", ErrUnknownMarketDay},
		{"Sabtu, 28 Jumadilawal 1955", "D, d M yyyy", ErrUnknownDayName},
		{"28 Jumadil 1955", "d M yyyy", ErrUnknownMonthName},
		{"28 Jumadilawal", "d M yyyy", ErrNoMatch},
		{"x28 Jumadilawal 1955", "d M yyyy", ErrNoMatch},
		{"28 1955", "d yyyy", ErrMissingField},
		{"30 Sapar 1955", "d M yyyy", ErrInvalidJavaneseDate},
		{"28-13-1955", "d-m-yyyy", ErrInvalidJavaneseDate},
		{"28 Jumadilawal 1955 25:00", "d M yyyy HH:MM", ErrInvalidGregorian},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if _, err := Parse(tt.value, tt.layout); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q, %q) error = %v, want %v", tt.value, tt.layout, err, tt.want)
			}
		})
	}
}

func TestParseInLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	d, err := ParseInLocation("28 Jumadilawal 1955 06:15", "d M yyyy HH:MM", jakarta)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2022, 1, 1, 6, 15, 0, 0, jakarta)
	if !d.Time().Equal(want) {
		t.Errorf("ParseInLocation() = %v, want %v", d.Time(), want)
	}
	if d.Wektu() != "Byar" {
		t.Errorf("Wektu() = %q, want %q", d.Wektu(), "Byar")
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	layouts := []string{
		"D P, dd M yyyy",
		"d M yyyy HH:MM:SS",
		"yyyy/mm/dd P",
		"P D d-m-yyyy Z",
	}
	spans := []struct {
		start time.Time
		days  int
	}{
		{time.Date(2019, 7, 3, 17, 42, 11, 0, time.UTC), 731},
		{time.Date(1050, 6, 1, 6, 0, 0, 0, time.UTC), 400}, // three-digit years
		{time.Date(100, 3, 1, 20, 30, 0, 0, time.UTC), 60}, // negative years
	}
	for _, span := range spans {
		if span.start.Year() == 100 && New(span.start).Year() >= 0 {
			t.Fatalf("New(%v).Year() = %d, want a negative year", span.start, New(span.start).Year())
		}
		for d := range Days(span.start, span.start.AddDate(0, 0, span.days)) {
			for _, layout := range layouts {
				s := d.Format(layout)
				got, err := Parse(s, layout)
				if err != nil {
					t.Fatalf("Parse(%q, %q) error = %v", s, layout, err)
				}
				if !got.SameDay(d) {
					t.Fatalf("Parse(%q, %q) = %v, want %v", s, layout, got, d)
				}
			}
		}
	}
}
