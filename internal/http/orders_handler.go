package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Bhuvana30-web/my-waydukaan/internal/order"
)

type OrdersHandler struct {
	recorder *order.Recorder
	timeout  time.Duration
}

func NewOrdersHandler(recorder *order.Recorder, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		recorder: recorder,
		timeout:  timeout,
	}
}

// GET /api/v1/orders
func (h *OrdersHandler) ListCartOrders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, order.OriginCart)
}

// GET /api/v1/basket/orders
func (h *OrdersHandler) ListBasketOrders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, order.OriginBasket)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request, origin order.Origin) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	respondJSON(w, http.StatusOK, h.recorder.Orders(ctx, userID, origin))
}
