package calendar

import "errors"

// Weton errors.
var (
	// ErrInvalidWeton is returned when a weton is not exactly "Dina Pasaran".
	ErrInvalidWeton = errors.New("weton must be two words: dina and pasaran")

	// ErrUnknownDayName is returned for a day name not in Dina.
	ErrUnknownDayName = errors.New("unknown dina")

	// ErrUnknownMarketDay is returned for a market day not in Pasaran.
	ErrUnknownMarketDay = errors.New("unknown pasaran")
)

// Construction errors.
var (
	// ErrInvalidGregorian is returned when hour, minute or second are out of
	// range for a Gregorian time of day.
	ErrInvalidGregorian = errors.New("invalid gregorian time")

	// ErrInvalidJavaneseDate is returned for a month index or day of month
	// that does not exist in the requested Javanese year.
	ErrInvalidJavaneseDate = errors.New("invalid javanese date")
)

// Layout and parse errors.
var (
	ErrLayout            = errors.New("invalid layout")
	ErrNoMatch           = errors.New("value does not match layout")
	ErrUnparseableNumber = errors.New("unparseable number")
	ErrUnknownMonthName  = errors.New("unknown wulan")
	ErrMissingField      = errors.New("layout is missing a required field")
	ErrMarketDayMismatch = errors.New("pasaran does not match date")
	ErrDayNameMismatch   = errors.New("dina does not match date")
)
