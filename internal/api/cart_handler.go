package api

import (
	"encoding/json"
	"net/http"

	"soyhub-be/internal/cart"
	"soyhub-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartSvc     cart.Service
	deliveryFee float64
}

func NewCartHandler(cartSvc cart.Service, deliveryFee float64) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, deliveryFee: deliveryFee}
}

// Get returns the cart contents plus totals for both delivery options so
// the storefront can render the switch without a second round trip.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items := h.cartSvc.Items(userID)
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"items":          items,
		"count":          h.cartSvc.Count(userID),
		"pickup_total":   h.cartSvc.Total(userID, 0),
		"delivery_total": h.cartSvc.Total(userID, h.deliveryFee),
	})
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.cartSvc.Add(r.Context(), userID, body.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"item":  item,
		"count": h.cartSvc.Count(userID),
	})
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	productID := chi.URLParam(r, "productID")
	if err := h.cartSvc.SetQuantity(r.Context(), userID, productID, body.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"items": h.cartSvc.Items(userID),
		"count": h.cartSvc.Count(userID),
	})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	productID := chi.URLParam(r, "productID")
	if err := h.cartSvc.Remove(r.Context(), userID, productID); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"items": h.cartSvc.Items(userID),
		"count": h.cartSvc.Count(userID),
	})
}
