package api

import (
	"encoding/json"
	"net/http"

	"soyhub-be/internal/metrics"
	"soyhub-be/internal/order"
	"soyhub-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderSvc order.Service
}

func NewOrderHandler(orderSvc order.Service) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DeliveryOption string `json:"delivery_option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.orderSvc.Checkout(r.Context(), order.DeliveryOption(body.DeliveryOption))
	if err != nil {
		metrics.CheckoutFailures.Inc()
		writeError(w, r, err)
		return
	}

	metrics.OrdersCreated.Inc()
	utils.WriteJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListMine(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	orderID := chi.URLParam(r, "orderID")
	if err := h.orderSvc.SetStatus(r.Context(), orderID, order.Status(body.Status)); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"id": orderID, "status": body.Status})
}

func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orderSvc.TodayStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
