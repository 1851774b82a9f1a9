package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// SubmitHours serves POST /hours/submit. The filter selects the target
// day: vandaag writes today, week writes the day addressed by the
// year/week pair and the weekday code.
func (h *Handler) SubmitHours(w http.ResponseWriter, r *http.Request) {
	var req SubmitHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		})
		return
	}

	if err := h.validate.Validate(req); err != nil {
		h.handleError(w, err)
		return
	}

	scope, err := domain.ParseScope(req.Filter, req.Year, 0, req.Week)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.hoursService.SubmitHours(r.Context(), req.UserID, scope, req.Hours, req.Day); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SubmitHoursResponse{Status: "ok"})
}
