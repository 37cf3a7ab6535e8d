package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Store is a string-keyed, string-valued persistence medium. Values are whole
// JSON documents; every write replaces the full value under its key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrKeyNotFound = errors.New("key not found")

// ReadJSON decodes the value under key into T. A missing key, an unreachable
// store or a corrupt value all yield the fallback; decode failures are logged
// and never reach the caller.
func ReadJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return fallback
	}
	if err != nil {
		log.Printf("store get failed for %q: %v", key, err)
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("corrupt value under %q, using fallback: %v", key, err)
		return fallback
	}
	return v
}

// WriteJSON serializes v and stores it under key, replacing whatever was
// there before.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal value for %q failed: %w", key, err)
	}
	if err := s.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("store set failed for %q: %w", key, err)
	}
	return nil
}
