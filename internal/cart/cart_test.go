package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

func newTestEngine() *Engine {
	return NewEngine(store.NewMemoryStore())
}

func rice() *domain.Candidate {
	return &domain.Candidate{ID: "a1", Name: "Rice", Category: "foodgrains", Price: 100, Stock: 2}
}

func TestAddItem_NewItem(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	items, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 100.0, sut.Total(ctx, "u1"))
	assert.Equal(t, 1, sut.Count(ctx, "u1"))
}

func TestAddItem_StockCeilingScenario(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)
	assert.Equal(t, 1, sut.Count(ctx, "u1"))
	assert.Equal(t, 100.0, sut.Total(ctx, "u1"))

	_, err = sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)
	assert.Equal(t, 2, sut.Count(ctx, "u1"))
	assert.Equal(t, 200.0, sut.Total(ctx, "u1"))

	// At the stock ceiling the add is silently dropped
	_, err = sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)
	assert.Equal(t, 2, sut.Count(ctx, "u1"))
	assert.Equal(t, 200.0, sut.Total(ctx, "u1"))
}

func TestAddItem_DedupesByTriple(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := sut.AddItem(ctx, "u1", &domain.Candidate{ID: "a1", Name: "Rice", Category: "foodgrains", Price: 100})
		require.NoError(t, err)
	}

	items := sut.Items(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItem_DifferentCategorySeparateEntry(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", &domain.Candidate{ID: "a1", Name: "Rice", Category: "foodgrains", Price: 100})
	require.NoError(t, err)
	_, err = sut.AddItem(ctx, "u1", &domain.Candidate{ID: "a1", Name: "Rice", Category: "combos", Price: 100})
	require.NoError(t, err)

	assert.Len(t, sut.Items(ctx, "u1"), 2)
}

func TestAddItem_NilCandidateIsNoOp(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	items, err := sut.AddItem(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItem_LegacyIDAndDiscountedPrice(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	items, err := sut.AddItem(ctx, "u1", &domain.Candidate{LegacyID: "b2", Name: "Shampoo", DiscountedPrice: 180})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b2", items[0].ID)
	assert.Equal(t, 180.0, items[0].Price)
	assert.Equal(t, domain.DefaultStock, items[0].Stock)
	assert.Equal(t, domain.DefaultCategory, items[0].Category)
}

func TestRemoveItem(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	items, err := sut.RemoveItem(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Removing an absent id is a no-op
	items, err = sut.RemoveItem(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantity_ZeroBehavesLikeRemove(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	items, err := sut.SetQuantity(ctx, "u1", "a1", 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Also holds for absent ids
	items, err = sut.SetQuantity(ctx, "u1", "missing", 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantity_WithinStock(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	items, err := sut.SetQuantity(ctx, "u1", "a1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantity_AboveStockIsDropped(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	items, err := sut.SetQuantity(ctx, "u1", "a1", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity, "update above the stock ceiling should leave the entry unchanged")
}

func TestClear(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	require.NoError(t, sut.Clear(ctx, "u1"))
	assert.Empty(t, sut.Items(ctx, "u1"))
	assert.Zero(t, sut.Total(ctx, "u1"))
}

func TestTotal_OrderInvariant(t *testing.T) {
	ctx := context.Background()

	a := &domain.Candidate{ID: "a1", Name: "Rice", Category: "foodgrains", Price: 100}
	b := &domain.Candidate{ID: "b2", Name: "Oil", Category: "foodgrains", Price: 150}

	first := newTestEngine()
	for _, c := range []*domain.Candidate{a, a, b} {
		_, err := first.AddItem(ctx, "u1", c)
		require.NoError(t, err)
	}

	second := newTestEngine()
	for _, c := range []*domain.Candidate{b, a, a} {
		_, err := second.AddItem(ctx, "u1", c)
		require.NoError(t, err)
	}

	assert.Equal(t, first.Total(ctx, "u1"), second.Total(ctx, "u1"))
	assert.Equal(t, 350.0, first.Total(ctx, "u1"))
}

func TestItemCount(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)
	_, err = sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	assert.Equal(t, 2, sut.ItemCount(ctx, "u1", "a1"))
	assert.Equal(t, 0, sut.ItemCount(ctx, "u1", "missing"))
}

func TestEngines_AreScopedPerUser(t *testing.T) {
	sut := newTestEngine()
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "u1", rice())
	require.NoError(t, err)

	assert.Empty(t, sut.Items(ctx, "u2"))
}

func TestItems_CorruptBlobFallsBackToEmpty(t *testing.T) {
	kv := store.NewMemoryStore()
	sut := NewEngine(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "cart:u1", `[{"id":"a1",`))

	assert.Empty(t, sut.Items(ctx, "u1"))
}
