package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cfo-pulse/internal/common/pagination"
	"cfo-pulse/internal/handler/http/requestid"
	"cfo-pulse/internal/handler/http/respond"
	artUC "cfo-pulse/internal/usecase/article"
)

type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// listResponse wraps one page of articles with its pagination metadata.
type listResponse struct {
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

// ServeHTTP handles GET /articles. Query parameters: page, limit,
// category (exact taxonomy name), saved (true restricts to saved rows).
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	reqID := requestid.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r)
	if err != nil {
		h.Logger.Warn("invalid pagination parameters",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filter := artUC.ListFilter{
		Category: r.URL.Query().Get("category"),
		Saved:    r.URL.Query().Get("saved") == "true",
	}

	result, err := h.Svc.ListPaginated(ctx, filter, params)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrUnknownCategory) {
			code = http.StatusBadRequest
		}
		h.Logger.Error("failed to list articles",
			slog.String("error", err.Error()),
			slog.Int("page", params.Page),
			slog.String("request_id", reqID))
		respond.SafeError(w, code, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, a := range result.Data {
		dtos = append(dtos, toDTO(a))
	}

	h.Logger.Info("article list served",
		slog.Int("page", params.Page),
		slog.Int("returned", len(dtos)),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", reqID))

	respond.JSON(w, http.StatusOK, listResponse{
		Data:       dtos,
		Pagination: result.Pagination,
	})
}
