package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"cfo-pulse/internal/handler/http/respond"
)

// HealthResponse is the JSON body of the /health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus reports one dependency's health.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler serves GET /health, reporting overall status and a
// database connectivity check. Returns 503 when any check fails.
type HealthHandler struct {
	DB *sql.DB
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]CheckStatus),
	}
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = CheckStatus{Status: "unhealthy", Message: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		resp.Checks["database"] = CheckStatus{Status: "healthy"}
	}

	respond.JSON(w, code, resp)
}
