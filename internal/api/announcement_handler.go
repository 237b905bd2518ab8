package api

import (
	"encoding/json"
	"net/http"

	"soyhub-be/internal/announcement"
	"soyhub-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler struct {
	annSvc announcement.Service
}

func NewAnnouncementHandler(annSvc announcement.Service) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc}
}

func (h *AnnouncementHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	anns, err := h.annSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"announcements": anns})
}

func (h *AnnouncementHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	anns, err := h.annSvc.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"announcements": anns})
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ann, err := h.annSvc.Create(r.Context(), body.Title, body.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ann)
}

func (h *AnnouncementHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   *string `json:"title"`
		Message *string `json:"message"`
		Active  *bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "announcementID")
	err := h.annSvc.Update(r.Context(), id, announcement.UpdateParams{
		Title:   body.Title,
		Message: body.Message,
		Active:  body.Active,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "announcementID")
	if err := h.annSvc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"id": id})
}
