// Package calendar converts between the Gregorian calendar and the Javanese
// calendar (the combined lunar month, pasaran and wuku cycles).
package calendar

import "strings"

// Dina are the seven day names, indexed the same way as time.Weekday
// (0 = Minggu/Sunday).
var Dina = [7]string{"Minggu", "Senen", "Selasa", "Rebo", "Kemis", "Jemuah", "Setu"}

// Pasaran are the five market days.
var Pasaran = [5]string{"Legi", "Pahing", "Pon", "Wage", "Kliwon"}

// Wulan are the twelve Javanese months, starting with Sura.
var Wulan = [12]string{
	"Sura", "Sapar", "Mulud", "Bakda Mulud", "Jumadilawal",
	"Jumadilakir", "Rejeb", "Ruwah", "Pasa", "Sawal", "Sela", "Besar",
}

// Taun are the year names of the eight-year windu cycle.
var Taun = [8]string{"Alip", "Ehe", "Jimawal", "Je", "Dal", "Be", "Wawu", "Jimakir"}

// Wuku are the thirty seven-day weeks of the wuku rotation.
var Wuku = [30]string{
	"Sinta", "Landep", "Wukir", "Kurantil", "Tolu",
	"Gumbreg", "Warigalit", "Warigagung", "Julungwangi", "Sungsang",
	"Galungan", "Kuningan", "Langkir", "Mandasiya", "Julungpujut",
	"Pahang", "Kuruwelut", "Marakeh", "Tambir", "Medangkungan",
	"Maktal", "Wuye", "Manahil", "Prangbakat", "Bala",
	"Wugu", "Wayang", "Kulawu", "Dukut", "Watugunung",
}

// Mongso are the twelve seasons of the pranata mangsa.
var Mongso = [12]string{
	"Kasa", "Karo", "Katelu", "Kapat", "Kalima", "Kanem",
	"Kapitu", "Kawolu", "Kasanga", "Kasadasa", "Desta", "Sada",
}

// Neptu weights per day name and per market day.
var (
	NeptuDina    = [7]int{5, 4, 3, 7, 8, 6, 9}
	NeptuPasaran = [5]int{5, 9, 7, 4, 8}
)

// polaWindu is the year length of each position in the windu.
// A 355-day year is kabisat.
var polaWindu = [8]int{355, 354, 355, 354, 354, 354, 354, 355}

// winduDays is the length of one full windu.
const winduDays = 355*3 + 354*5

const (
	kabisatLength = 355
	daysPerWeek   = 7
	pasaranCycle  = 5
	wukuCycle     = 30
)

// wulanLength is the length of the first eleven months; Besar is 29 days,
// or 30 in a kabisat year.
var wulanLength = [11]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30}

// monthLength returns the number of days in the month with the given index.
func monthLength(monthIndex int, kabisat bool) int {
	if monthIndex < len(wulanLength) {
		return wulanLength[monthIndex]
	}
	if kabisat {
		return 30
	}
	return 29
}

// lookup returns the index of name in names, compared case-insensitively
// after trimming spaces, or -1.
func lookup(names []string, name string) int {
	name = strings.TrimSpace(name)
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}
