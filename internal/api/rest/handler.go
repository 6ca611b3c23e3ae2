package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/daybook-app/daybook/internal/usecase/diary"
	"github.com/daybook-app/daybook/internal/usecase/memo"
	"github.com/daybook-app/daybook/pkg/logger/slogx"
)

// Handler bundles the HTTP endpoints over the diary and memo usecases.
type Handler struct {
	diary *diary.Usecase
	memos *memo.Usecase
}

// NewHandler returns a router exposing the REST API.
func NewHandler(diaryUC *diary.Usecase, memoUC *memo.Usecase) http.Handler {
	h := &Handler{diary: diaryUC, memos: memoUC}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/diary-entries", func(r chi.Router) {
			r.Get("/", h.listDiaryEntries)
			r.Post("/", h.createDiaryEntry)
			r.Get("/search", h.searchDiaryEntries)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getDiaryEntry)
				r.Patch("/", h.updateDiaryEntry)
				r.Delete("/", h.deleteDiaryEntry)
			})
		})

		r.Route("/memos", func(r chi.Router) {
			r.Get("/", h.listMemos)
			r.Post("/", h.createMemo)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getMemo)
				r.Patch("/", h.updateMemo)
				r.Delete("/", h.deleteMemo)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// internalError hides the failure behind a generic message; the cause
// only goes to the log.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	slogx.Error(r.Context(), "unexpected error", slogx.Err(err))
	writeError(w, http.StatusInternalServerError, message)
}
