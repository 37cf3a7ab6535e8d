// Package basket is the recurring-items collection. It shares the cart
// engine's semantics and additionally promotes frequently ordered products
// out of the cart order history on load.
package basket

import (
	"context"
	"log"

	"github.com/Bhuvana30-web/my-waydukaan/internal/cart"
	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/order"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

type Engine struct {
	*cart.Engine
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{
		Engine: cart.NewEngineFor(s, string(order.OriginBasket)),
		store:  s,
	}
}

// Load returns the basket after running the promotion scan: any item id that
// occurs more than once across the cart order history is copied into the
// basket. The merged list is deduplicated by id, first seen wins, and
// persisted, so running Load again against the same history is a no-op.
// Promotion only ever adds; nothing is removed when an item's order
// frequency appears to drop.
func (e *Engine) Load(ctx context.Context, userID string) []domain.LineItem {
	basket := e.Items(ctx, userID)
	orders := store.ReadJSON(ctx, e.store, order.LogKey(order.OriginCart, userID), []domain.Order{})

	counts := make(map[string]int)
	for _, o := range orders {
		for _, li := range o.Items {
			if li.ID != "" {
				counts[li.ID]++
			}
		}
	}

	var regulars []domain.LineItem
	for _, o := range orders {
		for _, li := range o.Items {
			if li.ID != "" && counts[li.ID] > 1 {
				regulars = append(regulars, li)
			}
		}
	}

	merged := dedupeByID(append(basket, regulars...))
	if err := store.WriteJSON(ctx, e.store, basketKey(userID), merged); err != nil {
		log.Printf("failed to save basket for %s: %v", userID, err)
	}
	return merged
}

func basketKey(userID string) string {
	return string(order.OriginBasket) + ":" + userID
}

// dedupeByID keeps the first-seen entry per id; later duplicates are
// discarded whole, not merged.
func dedupeByID(items []domain.LineItem) []domain.LineItem {
	seen := make(map[string]bool, len(items))
	unique := make([]domain.LineItem, 0, len(items))
	for _, li := range items {
		if seen[li.ID] {
			continue
		}
		seen[li.ID] = true
		unique = append(unique, li)
	}
	return unique
}
