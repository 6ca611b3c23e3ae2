package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook/internal/entity"
)

func (h *Handler) listMemos(w http.ResponseWriter, r *http.Request) {
	memos, err := h.memos.ListMemos(r.Context())
	if err != nil {
		h.internalError(w, r, err, "Failed to fetch memos")
		return
	}

	writeJSON(w, http.StatusOK, memos)
}

func (h *Handler) getMemo(w http.ResponseWriter, r *http.Request) {
	memo, err := h.memos.GetMemo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrMemoNotFound) {
			writeError(w, http.StatusNotFound, "Memo not found")
			return
		}
		h.internalError(w, r, err, "Failed to fetch memo")
		return
	}

	writeJSON(w, http.StatusOK, memo)
}

func (h *Handler) createMemo(w http.ResponseWriter, r *http.Request) {
	var req createMemoRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return
	}

	memo, err := h.memos.CreateMemo(r.Context(), req.Content)
	if err != nil {
		h.internalError(w, r, err, "Failed to create memo")
		return
	}

	writeJSON(w, http.StatusCreated, memo)
}

func (h *Handler) updateMemo(w http.ResponseWriter, r *http.Request) {
	var req updateMemoRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if fields := validateStruct(req); fields != nil {
		writeValidationError(w, fields)
		return
	}

	memo, err := h.memos.UpdateMemo(r.Context(), chi.URLParam(r, "id"), entity.MemoUpdate{
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, entity.ErrMemoNotFound) {
			writeError(w, http.StatusNotFound, "Memo not found")
			return
		}
		h.internalError(w, r, err, "Failed to update memo")
		return
	}

	writeJSON(w, http.StatusOK, memo)
}

func (h *Handler) deleteMemo(w http.ResponseWriter, r *http.Request) {
	if err := h.memos.DeleteMemo(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, entity.ErrMemoNotFound) {
			writeError(w, http.StatusNotFound, "Memo not found")
			return
		}
		h.internalError(w, r, err, "Failed to delete memo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
