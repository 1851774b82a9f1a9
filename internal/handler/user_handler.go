package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// ListUsers serves GET /users. The role parameter defaults to "user",
// the roster the report views are built from.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		role = string(domain.RoleUser)
	}

	users, err := h.userService.ListByRole(r.Context(), domain.Role(role))
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := ListUsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, toUserResponse(user))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
