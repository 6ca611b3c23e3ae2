package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook/internal/entity"
)

func (h *Handler) listDiaryEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.diary.ListEntries(r.Context())
	if err != nil {
		h.internalError(w, r, err, "Failed to fetch diary entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) searchDiaryEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	entries, err := h.diary.SearchEntries(r.Context(), query)
	if err != nil {
		h.internalError(w, r, err, "Failed to search diary entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) getDiaryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.diary.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrDiaryEntryNotFound) {
			writeError(w, http.StatusNotFound, "Diary entry not found")
			return
		}
		h.internalError(w, r, err, "Failed to fetch diary entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) createDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var req createDiaryEntryRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return
	}

	entry, err := h.diary.CreateEntry(r.Context(), req.Title, req.Content, req.Emotion)
	if err != nil {
		h.internalError(w, r, err, "Failed to create diary entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) updateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var req updateDiaryEntryRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return
	}

	entry, err := h.diary.UpdateEntry(r.Context(), chi.URLParam(r, "id"), entity.DiaryEntryUpdate{
		Title:   req.Title,
		Content: req.Content,
		Emotion: req.Emotion,
	})
	if err != nil {
		if errors.Is(err, entity.ErrDiaryEntryNotFound) {
			writeError(w, http.StatusNotFound, "Diary entry not found")
			return
		}
		h.internalError(w, r, err, "Failed to update diary entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.diary.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, entity.ErrDiaryEntryNotFound) {
			writeError(w, http.StatusNotFound, "Diary entry not found")
			return
		}
		h.internalError(w, r, err, "Failed to delete diary entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
