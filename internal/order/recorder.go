// Package order records immutable order snapshots into per-origin append-only
// logs and validates the checkout form.
package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

// Origin selects which order log a record lands in. The values double as the
// source collection's key prefix, so clearing the right collection after a
// successful order follows from the origin alone.
type Origin string

const (
	OriginCart   Origin = "cart"
	OriginBasket Origin = "mybasket"
)

var ErrEmptyCollection = errors.New("collection is empty, nothing to order")

// LogKey is the storage key of an origin's order log.
func LogKey(origin Origin, userID string) string {
	return fmt.Sprintf("%s_orders:%s", origin, userID)
}

func collectionKey(origin Origin, userID string) string {
	return fmt.Sprintf("%s:%s", origin, userID)
}

// ValidationError carries field-keyed messages for the checkout form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid customer details: %d field(s)", len(e.Fields))
}

// ValidateCustomer checks the required checkout fields and returns nil when
// all of them pass.
func ValidateCustomer(c *domain.Customer) *ValidationError {
	fields := make(map[string]string)
	if c == nil || strings.TrimSpace(c.Name) == "" {
		fields["name"] = "Name is required"
	}
	if c == nil || strings.TrimSpace(c.Address) == "" {
		fields["address"] = "Shipping address is required"
	}
	if c == nil || c.Payment == "" {
		fields["payment"] = "Payment mode is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type Recorder struct {
	store store.Store
}

func NewRecorder(s store.Store) *Recorder {
	return &Recorder{store: s}
}

// PlaceOrder appends an order snapshot to the origin's log and then clears
// the source collection. The log write comes first so a failure between the
// two steps can never lose an order; a failed clear leaves a stale cart,
// which is recoverable. Cart-originated orders require a valid customer form.
func (r *Recorder) PlaceOrder(ctx context.Context, userID string, origin Origin, items []domain.LineItem, customer *domain.Customer) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}
	if origin == OriginCart {
		if verr := ValidateCustomer(customer); verr != nil {
			return nil, verr
		}
	}

	snapshot := make([]domain.LineItem, len(items))
	copy(snapshot, items)

	now := time.Now()
	ord := domain.Order{
		ID:       now.UnixMilli(),
		Items:    snapshot,
		Total:    domain.Total(snapshot),
		Customer: customer,
		Date:     now.UTC(),
		Status:   domain.OrderStatusProcessing,
	}

	key := LogKey(origin, userID)
	orders := store.ReadJSON(ctx, r.store, key, []domain.Order{})
	orders = append(orders, ord)
	if err := store.WriteJSON(ctx, r.store, key, orders); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	// The order is durable at this point. Clearing the source collection
	// afterwards means a failure here costs a stale view, never the order.
	if err := store.WriteJSON(ctx, r.store, collectionKey(origin, userID), []domain.LineItem{}); err != nil {
		log.Printf("failed to clear %s collection after order %d: %v", origin, ord.ID, err)
	}

	return &ord, nil
}

// Orders returns an origin's full order log, oldest first.
func (r *Recorder) Orders(ctx context.Context, userID string, origin Origin) []domain.Order {
	return store.ReadJSON(ctx, r.store, LogKey(origin, userID), []domain.Order{})
}
