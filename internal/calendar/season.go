package calendar

import "time"

// mongsoRange covers the Gregorian days [from, to] encoded as month*100+day.
type mongsoRange struct {
	from, to int
	mongso   int
}

// mongsoRanges lists the seasons in calendar order. Kapitu wraps across the
// year boundary (22 December to 2 February) and is handled by the fallback
// in mongsoIndex.
var mongsoRanges = []mongsoRange{
	{203, 229, 7},   // Kawolu
	{301, 325, 8},   // Kasanga
	{326, 418, 9},   // Kasadasa
	{419, 511, 10},  // Desta
	{512, 621, 11},  // Sada
	{622, 801, 0},   // Kasa
	{802, 824, 1},   // Karo
	{825, 917, 2},   // Katelu
	{918, 1012, 3},  // Kapat
	{1013, 1108, 4}, // Kalima
	{1109, 1221, 5}, // Kanem
}

const kapitu = 6

// mongsoIndex returns the season of the Gregorian calendar day of t.
func mongsoIndex(t time.Time) int {
	md := int(t.Month())*100 + t.Day()
	for _, r := range mongsoRanges {
		if md >= r.from && md <= r.to {
			return r.mongso
		}
	}
	return kapitu
}

// wektuRange covers the minutes of the day [from, to).
type wektuRange struct {
	from, to int
	name     string
}

var wektuRanges = []wektuRange{
	{60, 210, "Lingsir Wengi"},
	{210, 270, "Fajar"},
	{270, 330, "Saput Lemah"},
	{330, 390, "Byar"},
	{390, 540, "Enjing"},
	{540, 660, "Gumatel"},
	{660, 720, "Tengange"},
	{720, 780, "Bedhug"},
	{780, 900, "Lingsir Kulon"},
	{900, 990, "Ngasar"},
	{990, 1050, "Tunggang Gunung"},
	{1050, 1110, "Surup"},
	{1110, 1170, "Bakda Maghrib"},
	{1170, 1260, "Isya"},
	{1260, 1380, "Sirep Bocah"},
}

// tengahWengi runs from 23:00 to 01:00 across midnight.
const tengahWengi = "Tengah Wengi"

// Wektu names every period returned by WektuAt, in the order of the day
// starting at 01:00.
var Wektu = func() []string {
	names := make([]string, 0, len(wektuRanges)+1)
	for _, r := range wektuRanges {
		names = append(names, r.name)
	}
	return append(names, tengahWengi)
}()

// WektuAt returns the traditional name of the time of day of t. Seconds are
// ignored.
func WektuAt(t time.Time) string {
	minute := t.Hour()*60 + t.Minute()
	for _, r := range wektuRanges {
		if minute >= r.from && minute < r.to {
			return r.name
		}
	}
	return tengahWengi
}

// MongsoAt returns the season name of the Gregorian day of t.
func MongsoAt(t time.Time) string {
	return Mongso[mongsoIndex(t)]
}
