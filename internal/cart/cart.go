// Package cart implements the line-item collection engine shared by the
// shopping cart and (through embedding) the recurring-items basket. Every
// operation is a synchronous read-modify-write against the injected store,
// so the whole collection is re-persisted on each mutation.
package cart

import (
	"context"
	"fmt"
	"log"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

type Engine struct {
	store  store.Store
	prefix string
}

// NewEngine returns the cart engine, persisting under "cart:<user>".
func NewEngine(s store.Store) *Engine {
	return NewEngineFor(s, "cart")
}

// NewEngineFor returns an engine over a different key prefix. The basket
// engine reuses the cart collection semantics this way.
func NewEngineFor(s store.Store, prefix string) *Engine {
	return &Engine{store: s, prefix: prefix}
}

func (e *Engine) storageKey(userID string) string {
	return fmt.Sprintf("%s:%s", e.prefix, userID)
}

// Items returns the current collection in insertion order. A missing or
// corrupt blob yields an empty collection.
func (e *Engine) Items(ctx context.Context, userID string) []domain.LineItem {
	return store.ReadJSON(ctx, e.store, e.storageKey(userID), []domain.LineItem{})
}

// AddItem normalizes the candidate and merges it into the collection. An
// entry matching on the (id, name, category) triple gains one quantity,
// capped silently at its stock ceiling; otherwise a new entry with quantity 1
// is appended. A nil candidate is logged and ignored.
func (e *Engine) AddItem(ctx context.Context, userID string, candidate *domain.Candidate) ([]domain.LineItem, error) {
	items := e.Items(ctx, userID)
	if candidate == nil {
		log.Printf("no product provided to AddItem")
		return items, nil
	}

	next := domain.Normalize(*candidate)
	for i := range items {
		if !items[i].SameListing(next) {
			continue
		}
		if items[i].Quantity >= items[i].Stock {
			// Silent rejection: callers read the unchanged collection
			// back and surface the ceiling themselves.
			log.Printf("stock limit reached for %s", items[i].Name)
			return items, nil
		}
		items[i].Quantity++
		return items, e.save(ctx, userID, items)
	}

	items = append(items, next)
	return items, e.save(ctx, userID, items)
}

// RemoveItem drops every entry matching id. Removing an absent id is a no-op.
func (e *Engine) RemoveItem(ctx context.Context, userID, id string) ([]domain.LineItem, error) {
	items := e.Items(ctx, userID)
	kept := items[:0]
	for _, li := range items {
		if li.ID != id {
			kept = append(kept, li)
		}
	}
	return kept, e.save(ctx, userID, kept)
}

// SetQuantity updates matching entries to quantity n. n < 1 removes the item;
// n above an entry's stock ceiling leaves that entry unchanged.
func (e *Engine) SetQuantity(ctx context.Context, userID, id string, n int) ([]domain.LineItem, error) {
	if n < 1 {
		return e.RemoveItem(ctx, userID, id)
	}

	items := e.Items(ctx, userID)
	for i := range items {
		if items[i].ID == id && n <= items[i].Stock {
			items[i].Quantity = n
		}
	}
	return items, e.save(ctx, userID, items)
}

func (e *Engine) Clear(ctx context.Context, userID string) error {
	return e.save(ctx, userID, []domain.LineItem{})
}

func (e *Engine) Total(ctx context.Context, userID string) float64 {
	return domain.Total(e.Items(ctx, userID))
}

func (e *Engine) Count(ctx context.Context, userID string) int {
	return domain.Count(e.Items(ctx, userID))
}

// ItemCount returns the quantity of the entry matching id, or 0.
func (e *Engine) ItemCount(ctx context.Context, userID, id string) int {
	for _, li := range e.Items(ctx, userID) {
		if li.ID == id {
			return li.Quantity
		}
	}
	return 0
}

func (e *Engine) save(ctx context.Context, userID string, items []domain.LineItem) error {
	if err := store.WriteJSON(ctx, e.store, e.storageKey(userID), items); err != nil {
		return fmt.Errorf("failed to save %s collection: %w", e.prefix, err)
	}
	return nil
}
