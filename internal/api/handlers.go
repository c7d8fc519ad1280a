package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/tanggalan-api/internal/calendar"
	"github.com/zapponejosh/tanggalan-api/internal/config"
	"github.com/zapponejosh/tanggalan-api/internal/database"
	"github.com/zapponejosh/tanggalan-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		loc:    cfg.Location(),
		logger: logger,
		now:    time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/dates/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	d := calendar.New(h.now().In(h.loc))
	WriteSuccess(w, newDateResponse(d, r.URL.Query().Get("layout")))
}

// GetDate handles GET /api/v1/dates/{YYYY-MM-DD}?time=HH:MM[:SS]&layout=
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	t, err := h.parseDateTime(chi.URLParam(r, "date"), r.URL.Query().Get("time"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, newDateResponse(calendar.New(t), r.URL.Query().Get("layout")))
}

// GetNextWeton handles GET /api/v1/dates/{YYYY-MM-DD}/next?weton=Dina+Pasaran
func (h *Handlers) GetNextWeton(w http.ResponseWriter, r *http.Request) {
	t, err := h.parseDateTime(chi.URLParam(r, "date"), "")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	weton := r.URL.Query().Get("weton")
	if weton == "" {
		WriteBadRequest(w, "weton parameter is required, e.g. weton=Setu+Pahing")
		return
	}

	from := calendar.New(t)
	next, err := from.WetonSabanjure(weton)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, NextResponse{
		From: newDateResponse(from, ""),
		Next: newDateResponse(next, ""),
		Days: daysBetween(from.Time(), next.Time()),
	})
}

// GetRange handles GET /api/v1/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := h.parseDateTime(startStr, "")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	end, err := h.parseDateTime(endStr, "")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if n := daysBetween(start, end) + 1; n > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range covers %d days; the limit is %d", n, h.cfg.MaxRangeDays))
		return
	}

	resp := RangeResponse{Start: startStr, End: endStr}
	for d := range calendar.Days(start, end) {
		resp.Days = append(resp.Days, newDateResponse(d, r.URL.Query().Get("layout")))
	}

	WriteSuccess(w, resp)
}

// ParseJavanese handles GET /api/v1/parse?value=&layout=
//
// Values without a Z token are read in the configured time zone.
func (h *Handlers) ParseJavanese(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	layout := r.URL.Query().Get("layout")
	if value == "" || layout == "" {
		WriteBadRequest(w, "Both value and layout parameters are required")
		return
	}

	d, err := calendar.ParseInLocation(value, layout, h.loc)
	if err != nil {
		logger.Debug(r.Context(), "parse rejected",
			slog.String("value", value),
			slog.String("layout", layout),
			slog.Any("error", err))
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, newDateResponse(d, layout))
}

// GetMonth handles GET /api/v1/months/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		WriteBadRequest(w, "year must be a number between 1 and 9999")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		WriteBadRequest(w, "month must be a number between 1 and 12")
		return
	}

	sheet := calendar.NewMonthSheet(year, time.Month(month), h.loc)
	WriteSuccess(w, newMonthResponse(sheet))
}

// GetAlmanacStats handles GET /api/v1/almanac/stats
func (h *Handlers) GetAlmanacStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.Stats(r.Context())
	if err != nil {
		logger.Error(r.Context(), "failed to read almanac stats", err)
		WriteInternalError(w, "Failed to read almanac")
		return
	}
	WriteSuccess(w, stats)
}

// ListAlmanacWeton handles GET /api/v1/almanac/weton?weton=Dina+Pasaran&limit=N
func (h *Handlers) ListAlmanacWeton(w http.ResponseWriter, r *http.Request) {
	weton := r.URL.Query().Get("weton")
	dina, pasaran, err := calendar.ParseWeton(weton)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if l, err := strconv.Atoi(s); err == nil && l > 0 && l <= 1000 {
			limit = l
		}
	}

	days, err := h.db.ListByWeton(r.Context(), calendar.Dina[dina], calendar.Pasaran[pasaran], limit)
	if err != nil {
		logger.Error(r.Context(), "failed to list almanac days", err,
			slog.String("weton", weton))
		WriteInternalError(w, "Failed to read almanac")
		return
	}
	if days == nil {
		days = []database.AlmanacDay{}
	}

	WriteSuccess(w, map[string]any{
		"weton": calendar.Dina[dina] + " " + calendar.Pasaran[pasaran],
		"days":  days,
	})
}

// parseDateTime reads a YYYY-MM-DD date and an optional HH:MM or HH:MM:SS
// time in the configured zone. A missing time means midnight.
func (h *Handlers) parseDateTime(date, clock string) (time.Time, error) {
	if date == "" {
		return time.Time{}, fmt.Errorf("date is required, use YYYY-MM-DD")
	}
	value, layout := date, database.DateLayout
	switch strings.Count(clock, ":") {
	case 0:
		if clock != "" {
			return time.Time{}, fmt.Errorf("invalid time %q, use HH:MM or HH:MM:SS", clock)
		}
	case 1:
		value, layout = date+" "+clock, database.DateLayout+" 15:04"
	default:
		value, layout = date+" "+clock, database.DateLayout+" 15:04:05"
	}
	t, err := time.ParseInLocation(layout, value, h.loc)
	if err != nil {
		if clock != "" {
			return time.Time{}, fmt.Errorf("invalid date or time %q %q, use YYYY-MM-DD and HH:MM[:SS]", date, clock)
		}
		return time.Time{}, fmt.Errorf("invalid date format: %s. Use YYYY-MM-DD", date)
	}
	return t, nil
}

// daysBetween counts calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
