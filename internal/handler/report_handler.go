package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// GetReport serves GET /report. Query parameters mirror the dashboard
// form: filter (vandaag, week, maand), year, month, week. Missing
// parameters default to the current week.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	isoYear, isoWeek := now.ISOWeek()

	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = string(domain.ScopeWeek)
	}

	year, err := queryInt(r, "year", isoYear)
	if err != nil {
		h.handleError(w, err)
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		h.handleError(w, err)
		return
	}
	week, err := queryInt(r, "week", isoWeek)
	if err != nil {
		h.handleError(w, err)
		return
	}

	scope, err := domain.ParseScope(filter, year, month, week)
	if err != nil {
		h.handleError(w, err)
		return
	}

	report, err := h.reportService.Aggregate(r.Context(), scope)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toReportResponse(report))
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: name + " must be an integer",
		}
	}
	return value, nil
}
