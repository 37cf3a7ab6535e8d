package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Bhuvana30-web/my-waydukaan/internal/cart"
	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/order"
)

type CheckoutHandler struct {
	cart     *cart.Engine
	recorder *order.Recorder
	timeout  time.Duration
}

func NewCheckoutHandler(cartEngine *cart.Engine, recorder *order.Recorder, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		cart:     cartEngine,
		recorder: recorder,
		timeout:  timeout,
	}
}

type CheckoutRequestDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

// PlaceOrder turns the cart into an order record. Validation failures come
// back field-keyed so the form can mark each input; the cart is only cleared
// once the order log write has gone through.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	customer := &domain.Customer{
		Name:    req.Name,
		Address: req.Address,
		Payment: req.Payment,
	}

	items := h.cart.Items(ctx, userID)
	ord, err := h.recorder.PlaceOrder(ctx, userID, order.OriginCart, items, customer)
	if err != nil {
		var verr *order.ValidationError
		switch {
		case errors.Is(err, order.ErrEmptyCollection):
			respondError(w, http.StatusConflict, "empty_cart", "your cart is empty")
		case errors.As(err, &verr):
			respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:  "invalid customer details",
				Code:   "validation_failed",
				Fields: verr.Fields,
			})
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
		}
		return
	}

	respondJSON(w, http.StatusCreated, ord)
}
