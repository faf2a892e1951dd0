package article

import (
	"errors"
	"net/http"

	"cfo-pulse/internal/domain/entity"
	"cfo-pulse/internal/handler/http/pathutil"
	"cfo-pulse/internal/handler/http/respond"
	artUC "cfo-pulse/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP handles GET /articles/{id}.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, artUC.ErrInvalidArticleID):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrArticleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
