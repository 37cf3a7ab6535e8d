package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/store"
)

func TestLogin_SetsSessionState(t *testing.T) {
	kv := store.NewMemoryStore()
	sut := NewService(kv)
	ctx := context.Background()

	p, err := sut.Login(ctx, "u1", domain.Profile{Email: "asha@example.com", Name: "Asha"})
	require.NoError(t, err)
	assert.False(t, p.LastLogin.IsZero())
	assert.True(t, sut.IsAuthenticated(ctx, "u1"))

	token, err := kv.Get(ctx, "token:u1")
	require.NoError(t, err)
	assert.Equal(t, "demo-token", token)
}

func TestIsAuthenticated_DefaultsToFalse(t *testing.T) {
	sut := NewService(store.NewMemoryStore())
	assert.False(t, sut.IsAuthenticated(context.Background(), "u1"))
}

func TestLogout_FlipsFlagOnly(t *testing.T) {
	kv := store.NewMemoryStore()
	sut := NewService(kv)
	ctx := context.Background()

	_, err := sut.Login(ctx, "u1", domain.Profile{Email: "asha@example.com"})
	require.NoError(t, err)
	require.NoError(t, sut.Logout(ctx, "u1"))

	assert.False(t, sut.IsAuthenticated(ctx, "u1"))
	// The profile itself survives logout
	assert.Equal(t, "asha@example.com", sut.Profile(ctx, "u1").Email)
}

func TestUpdateProfile_PreservesLastLogin(t *testing.T) {
	sut := NewService(store.NewMemoryStore())
	ctx := context.Background()

	logged, err := sut.Login(ctx, "u1", domain.Profile{Email: "asha@example.com"})
	require.NoError(t, err)

	updated, err := sut.UpdateProfile(ctx, "u1", domain.Profile{Email: "asha@example.com", Name: "Asha K"})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, logged.LastLogin, updated.LastLogin)
}

func TestSettings_FallbackToDefaults(t *testing.T) {
	sut := NewService(store.NewMemoryStore())
	assert.Equal(t, domain.DefaultSettings(), sut.Settings(context.Background(), "u1"))
}

func TestUpdateSettings_RoundTrips(t *testing.T) {
	sut := NewService(store.NewMemoryStore())
	ctx := context.Background()

	want := domain.Settings{Notifications: false, TwoFactorAuth: true, Language: "hi", Currency: "INR"}
	got, err := sut.UpdateSettings(ctx, "u1", want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, sut.Settings(ctx, "u1"))
}

func TestProfilesScopedPerUser(t *testing.T) {
	sut := NewService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := sut.Login(ctx, "u1", domain.Profile{Email: "asha@example.com"})
	require.NoError(t, err)

	assert.False(t, sut.IsAuthenticated(ctx, "u2"))
	assert.Empty(t, sut.Profile(ctx, "u2").Email)
}
