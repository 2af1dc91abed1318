package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/whatday/internal/calendar"
	"github.com/zapponejosh/whatday/internal/doomsday"
	"github.com/zapponejosh/whatday/internal/logger"
	"github.com/zapponejosh/whatday/internal/report"
)

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	oracle HealthChecker
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance. now defaults to time.Now.
// Handlers log through the default slog logger set up by logger.Setup.
func NewHandlers(oracle HealthChecker, now func() time.Time) *Handlers {
	if now == nil {
		now = time.Now
	}
	return &Handlers{
		oracle: oracle,
		now:    now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.oracle.Health(ctx); err != nil {
		logger.Warn(ctx, "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Calendar oracle unhealthy", CodeHealthCheck)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetTodayWeekday handles GET /api/v1/weekday/today
func (h *Handlers) GetTodayWeekday(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	logger.Debug(r.Context(), "resolved today", slog.String("today", calendar.FormatDate(today)))
	h.writeWeekday(w, r, today.Year(), int(today.Month()), today.Day())
}

// GetDateWeekday handles GET /api/v1/weekday/{YYYY-MM-DD}
func (h *Handlers) GetDateWeekday(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	if dateStr == "" {
		WriteBadRequest(w, "Date parameter is required")
		return
	}

	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeWeekday(w, r, date.Year(), int(date.Month()), date.Day())
}

// GetWeekdayByFields handles GET /api/v1/weekday?year=&month=&day=
//
// The fields are passed to the calculation as given, so impossible days
// such as 2023-2-30 still get an answer. Missing fields default to today.
func (h *Handlers) GetWeekdayByFields(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	fields := []struct {
		name     string
		fallback int
	}{
		{"year", today.Year()},
		{"month", int(today.Month())},
		{"day", today.Day()},
	}

	var values [3]int
	for i, f := range fields {
		values[i] = f.fallback
		raw := r.URL.Query().Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q must be an integer", f.name, raw))
			return
		}
		values[i] = v
	}

	h.writeWeekday(w, r, values[0], values[1], values[2])
}

// writeWeekday runs the calculation and writes the report document.
func (h *Handlers) writeWeekday(w http.ResponseWriter, r *http.Request, year, month, day int) {
	ctx := r.Context()

	weekday, path, err := doomsday.CalculateWeekday(year, month, day)
	switch {
	case err == nil:
	case doomsday.IsUnsupportedMonth(err):
		WriteBadRequest(w, err.Error(), CodeUnsupportedMonth)
		return
	case doomsday.IsDomainRange(err):
		WriteBadRequest(w, err.Error(), CodeDomainRange)
		return
	default:
		logger.Error(ctx, "weekday calculation failed", err,
			slog.String("date", report.DateLabel(year, month, day)))
		WriteInternalError(w, "Failed to calculate weekday")
		return
	}

	logger.Debug(ctx, "weekday calculated",
		slog.String("date", report.DateLabel(year, month, day)),
		slog.String("weekday", weekday),
	)

	WriteSuccess(w, report.NewDocument(year, month, day, weekday, path))
}
