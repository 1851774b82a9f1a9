package server

import (
	"net/http"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /report", h.GetReport)
	mux.HandleFunc("POST /hours/submit", h.SubmitHours)
	mux.HandleFunc("POST /hours/approve", h.ApproveHours)
	mux.HandleFunc("GET /users", h.ListUsers)
	mux.Handle("GET /metrics", promhttp.Handler())
}
