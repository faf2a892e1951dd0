package article

import (
	"net/http"

	"cfo-pulse/internal/handler/http/pathutil"
	"cfo-pulse/internal/handler/http/respond"
	artUC "cfo-pulse/internal/usecase/article"
)

type ReadHandler struct{ Svc *artUC.Service }

// ServeHTTP handles PATCH /articles/{id}/read. Marking an already-read
// article succeeds and returns the unchanged state.
func (h ReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.MarkRead(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}
