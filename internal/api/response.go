package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/zapponejosh/tanggalan-api/internal/calendar"
	"github.com/zapponejosh/tanggalan-api/internal/database"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DateResponse is the JSON form of a calendar.Date.
type DateResponse struct {
	Gregorian string `json:"gregorian"` // RFC 3339
	Date      string `json:"date"`      // YYYY-MM-DD
	Weton     string `json:"weton"`
	Dina      string `json:"dina"`
	Pasaran   string `json:"pasaran"`
	Neptu     int    `json:"neptu"`
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	Wulan     string `json:"wulan"`
	Year      int    `json:"year"`
	Taun      string `json:"taun"`
	Kabisat   bool   `json:"kabisat"`
	Wuku      string `json:"wuku"`
	Mongso    string `json:"mongso"`
	Wektu     string `json:"wektu"`
	Formatted string `json:"formatted,omitempty"`
}

func newDateResponse(d calendar.Date, layout string) DateResponse {
	resp := DateResponse{
		Gregorian: d.Time().Format(time.RFC3339),
		Date:      d.Time().Format(database.DateLayout),
		Weton:     d.Weton(),
		Dina:      d.Dina(),
		Pasaran:   d.Pasaran(),
		Neptu:     d.Neptu(),
		Day:       d.Day(),
		Month:     d.Month(),
		Wulan:     d.Wulan(),
		Year:      d.Year(),
		Taun:      d.Taun(),
		Kabisat:   d.IsKabisat(),
		Wuku:      d.Wuku(),
		Mongso:    d.Mongso(),
		Wektu:     d.Wektu(),
	}
	if layout != "" {
		resp.Formatted = d.Format(layout)
	}
	return resp
}

// NextResponse is the result of a weton search.
type NextResponse struct {
	From DateResponse `json:"from"`
	Next DateResponse `json:"next"`
	Days int          `json:"days"`
}

// RangeResponse lists every day of an inclusive range.
type RangeResponse struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Days  []DateResponse `json:"days"`
}

// MonthResponse is a Gregorian month sheet. Cells outside the month are null.
type MonthResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Weeks [][7]*DateResponse `json:"weeks"`
}

func newMonthResponse(s calendar.MonthSheet) MonthResponse {
	resp := MonthResponse{Year: s.Year, Month: int(s.Month)}
	for _, week := range s.Weeks {
		var row [7]*DateResponse
		for i, d := range week {
			if d != nil {
				dr := newDateResponse(*d, "")
				row[i] = &dr
			}
		}
		resp.Weeks = append(resp.Weeks, row)
	}
	return resp
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, "NOT_FOUND")
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, "BAD_REQUEST")
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, "UNAUTHORIZED")
}

// calendarErrorCodes maps calendar errors to response codes. Order matters
// only in that the first match wins.
var calendarErrorCodes = []struct {
	err  error
	code string
}{
	{calendar.ErrInvalidWeton, "INVALID_WETON"},
	{calendar.ErrUnknownDayName, "UNKNOWN_DAY_NAME"},
	{calendar.ErrUnknownMarketDay, "UNKNOWN_MARKET_DAY"},
	{calendar.ErrUnknownMonthName, "UNKNOWN_MONTH_NAME"},
	{calendar.ErrInvalidGregorian, "INVALID_TIME"},
	{calendar.ErrInvalidJavaneseDate, "INVALID_JAVANESE_DATE"},
	{calendar.ErrLayout, "INVALID_LAYOUT"},
	{calendar.ErrNoMatch, "NO_MATCH"},
	{calendar.ErrUnparseableNumber, "INVALID_NUMBER"},
	{calendar.ErrMissingField, "MISSING_FIELD"},
	{calendar.ErrMarketDayMismatch, "MARKET_DAY_MISMATCH"},
	{calendar.ErrDayNameMismatch, "DAY_NAME_MISMATCH"},
}

// WriteCalendarError writes a 400 response for an error from the calendar
// package, with a code naming the failure.
func WriteCalendarError(w http.ResponseWriter, err error) error {
	for _, c := range calendarErrorCodes {
		if errors.Is(err, c.err) {
			return WriteError(w, http.StatusBadRequest, err.Error(), c.code)
		}
	}
	return WriteBadRequest(w, err.Error())
}
