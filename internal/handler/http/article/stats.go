package article

import (
	"net/http"

	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/handler/http/respond"
	artUC "cfo-pulse/internal/usecase/article"
)

type StatsHandler struct{ Svc *artUC.Service }

type statsResponse struct {
	Total      int64            `json:"total"`
	Saved      int64            `json:"saved"`
	Unread     int64            `json:"unread"`
	ByCategory map[string]int64 `json:"byCategory"`
}

// ServeHTTP handles GET /articles/stats. Categories with no articles are
// reported as zero so clients can render all tabs.
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	byCategory := make(map[string]int64, len(entity.Categories()))
	for _, category := range entity.Categories() {
		byCategory[string(category)] = stats.ByCategory[category]
	}

	respond.JSON(w, http.StatusOK, statsResponse{
		Total:      stats.Total,
		Saved:      stats.Saved,
		Unread:     stats.Unread,
		ByCategory: byCategory,
	})
}
