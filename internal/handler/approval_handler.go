package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// ApproveHours serves POST /hours/approve. All pending entries of the
// user inside the requested scope become approved in one statement.
func (h *Handler) ApproveHours(w http.ResponseWriter, r *http.Request) {
	var req ApproveRequest
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

	scope, err := domain.ParseScope(req.Filter, req.Year, req.Month, req.Week)
	if err != nil {
		h.handleError(w, err)
		return
	}

	receipt, err := h.approvalService.Approve(r.Context(), req.UserID, scope)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ApproveResponse{
		Approved: receipt.Approved,
		Message:  receipt.Message,
	})
}
