package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Bhuvana30-web/my-waydukaan/internal/basket"
	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/order"
)

type BasketHandler struct {
	engine   *basket.Engine
	recorder *order.Recorder
	timeout  time.Duration
}

func NewBasketHandler(engine *basket.Engine, recorder *order.Recorder, timeout time.Duration) *BasketHandler {
	return &BasketHandler{
		engine:   engine,
		recorder: recorder,
		timeout:  timeout,
	}
}

// GetBasket loads the basket, which also runs the order-history promotion
// scan.
func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	respondJSON(w, http.StatusOK, collectionResponse(h.engine.Load(ctx, userID)))
}

func (h *BasketHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var candidate domain.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if candidate.ID == "" && candidate.LegacyID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	items, err := h.engine.AddItem(ctx, userID, &candidate)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update basket")
		return
	}

	respondJSON(w, http.StatusCreated, collectionResponse(items))
}

func (h *BasketHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items, err := h.engine.SetQuantity(ctx, userID, productID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update basket")
		return
	}

	respondJSON(w, http.StatusOK, collectionResponse(items))
}

func (h *BasketHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	items, err := h.engine.RemoveItem(ctx, userID, productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update basket")
		return
	}

	respondJSON(w, http.StatusOK, collectionResponse(items))
}

func (h *BasketHandler) ClearBasket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	if err := h.engine.Clear(ctx, userID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear basket")
		return
	}

	respondJSON(w, http.StatusOK, collectionResponse([]domain.LineItem{}))
}

// Checkout places one order covering the whole basket. No customer form is
// required on this flow.
func (h *BasketHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	items := h.engine.Load(ctx, userID)
	ord, err := h.recorder.PlaceOrder(ctx, userID, order.OriginBasket, items, nil)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCollection) {
			respondError(w, http.StatusConflict, "empty_basket", "your basket is empty")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
		return
	}

	respondJSON(w, http.StatusCreated, ord)
}
