package article

import (
	"net/http"

	"cfo-pulse/internal/handler/http/pathutil"
	"cfo-pulse/internal/handler/http/respond"
	artUC "cfo-pulse/internal/usecase/article"
)

type SaveHandler struct{ Svc *artUC.Service }

// ServeHTTP handles PATCH /articles/{id}/save, toggling the saved flag
// and returning the updated article.
func (h SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.ToggleSaved(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}
