package article

import (
	"log/slog"
	"net/http"

	artUC "cfo-pulse/internal/usecase/article"
)

// Register wires the article routes onto the mux. The literal
// /articles/stats pattern is more specific than /articles/, so the mux
// routes stats requests away from the ID handler.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /articles/stats", StatsHandler{Svc: svc})
	mux.Handle("GET /articles/", GetHandler{Svc: svc})
	mux.Handle("PATCH /articles/{id}/save", SaveHandler{Svc: svc})
	mux.Handle("PATCH /articles/{id}/read", ReadHandler{Svc: svc})
}
