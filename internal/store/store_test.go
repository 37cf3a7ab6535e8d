package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", `{"a":1}`))

	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, val)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_DeleteMissingKey(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Delete(context.Background(), "nope"))
}

func TestReadJSON_MissingKeyReturnsFallback(t *testing.T) {
	s := NewMemoryStore()

	got := ReadJSON(context.Background(), s, "missing", []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
}

func TestReadJSON_CorruptValueReturnsFallback(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "bad", `{"truncated`))

	got := ReadJSON(ctx, s, "bad", 42)
	assert.Equal(t, 42, got)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, WriteJSON(ctx, s, "p", payload{Name: "rice", Count: 3}))

	got := ReadJSON(ctx, s, "p", payload{})
	assert.Equal(t, payload{Name: "rice", Count: 3}, got)
}

func TestWriteJSON_ReplacesWholeValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, WriteJSON(ctx, s, "list", []int{1, 2, 3}))
	require.NoError(t, WriteJSON(ctx, s, "list", []int{9}))

	got := ReadJSON(ctx, s, "list", []int{})
	assert.Equal(t, []int{9}, got)
}
