// Package profile owns the user profile, settings and the mock login state.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func userKey(userID string) string     { return fmt.Sprintf("user:%s", userID) }
func settingsKey(userID string) string { return fmt.Sprintf("user_settings:%s", userID) }
func authKey(userID string) string     { return fmt.Sprintf("is_authenticated:%s", userID) }
func tokenKey(userID string) string    { return fmt.Sprintf("token:%s", userID) }

// Login stores the profile snapshot, a demo token and the authentication
// flag. Credentials are never verified; the login flow is a mock.
func (s *Service) Login(ctx context.Context, userID string, p domain.Profile) (domain.Profile, error) {
	p.LastLogin = time.Now().UTC()
	if err := store.WriteJSON(ctx, s.store, userKey(userID), p); err != nil {
		return domain.Profile{}, err
	}
	if err := s.store.Set(ctx, tokenKey(userID), "demo-token"); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to store token: %w", err)
	}
	if err := s.store.Set(ctx, authKey(userID), "true"); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to set auth flag: %w", err)
	}
	return p, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.store.Set(ctx, authKey(userID), "false"); err != nil {
		return fmt.Errorf("failed to clear auth flag: %w", err)
	}
	return nil
}

// IsAuthenticated reports the session flag. Only the literal "true" counts;
// anything else reads as logged out.
func (s *Service) IsAuthenticated(ctx context.Context, userID string) bool {
	val, err := s.store.Get(ctx, authKey(userID))
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return false
	}
	return val == "true"
}

func (s *Service) Profile(ctx context.Context, userID string) domain.Profile {
	return store.ReadJSON(ctx, s.store, userKey(userID), domain.Profile{})
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, p domain.Profile) (domain.Profile, error) {
	current := s.Profile(ctx, userID)
	if p.LastLogin.IsZero() {
		p.LastLogin = current.LastLogin
	}
	if err := store.WriteJSON(ctx, s.store, userKey(userID), p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (s *Service) Settings(ctx context.Context, userID string) domain.Settings {
	return store.ReadJSON(ctx, s.store, settingsKey(userID), domain.DefaultSettings())
}

func (s *Service) UpdateSettings(ctx context.Context, userID string, settings domain.Settings) (domain.Settings, error) {
	if err := store.WriteJSON(ctx, s.store, settingsKey(userID), settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
