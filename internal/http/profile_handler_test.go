package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
)

func login(t *testing.T, env *testEnv) {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{
		Email: "asha@example.com", Name: "Asha",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv("")

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{
		Email: "asha@example.com", Name: "Asha",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponseDTO
	decodeBody(t, rec, &resp)
	assert.Equal(t, "demo-token", resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.False(t, resp.User.LastLogin.IsZero())
}

func TestLogin_MissingEmail(t *testing.T) {
	env := newTestEnv("")

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{Name: "Asha"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "invalid_email", resp.Code)
}

func TestProfile_RequiresLogin(t *testing.T) {
	env := newTestEnv("")

	rec := env.do(t, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "unauthenticated", resp.Code)
}

func TestProfile_AfterLogin(t *testing.T) {
	env := newTestEnv("")
	login(t, env)

	rec := env.do(t, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Profile
	decodeBody(t, rec, &p)
	assert.Equal(t, "asha@example.com", p.Email)
}

func TestUpdateProfile_KeepsLastLogin(t *testing.T) {
	env := newTestEnv("")
	login(t, env)

	rec := env.do(t, http.MethodPut, "/api/v1/profile", domain.Profile{
		Email: "asha@example.com", Name: "Asha K", Phone: "9999999999",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Profile
	decodeBody(t, rec, &p)
	assert.Equal(t, "Asha K", p.Name)
	assert.False(t, p.LastLogin.IsZero(), "a profile edit must not wipe the login timestamp")
}

func TestLogout_LocksProfileAgain(t *testing.T) {
	env := newTestEnv("")
	login(t, env)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSettings_DefaultsBeforeAnyWrite(t *testing.T) {
	env := newTestEnv("")
	login(t, env)

	rec := env.do(t, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var s domain.Settings
	decodeBody(t, rec, &s)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestUpdateSettings_RoundTrips(t *testing.T) {
	env := newTestEnv("")
	login(t, env)

	want := domain.Settings{Notifications: false, TwoFactorAuth: true, Language: "hi", Currency: "INR"}
	rec := env.do(t, http.MethodPut, "/api/v1/settings", want)
	require.Equal(t, http.StatusOK, rec.Code)

	var s domain.Settings
	decodeBody(t, env.do(t, http.MethodGet, "/api/v1/settings", nil), &s)
	assert.Equal(t, want, s)
}
