package api

import (
	"encoding/json"
	"net/http"

	"soyhub-be/internal/product"
	"soyhub-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productSvc product.Service
}

func NewProductHandler(productSvc product.Service) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *ProductHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "productID")
	if err := h.productSvc.SetAvailability(r.Context(), id, body.Available); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "available": body.Available})
}
