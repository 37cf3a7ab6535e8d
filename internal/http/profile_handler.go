package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bhuvana30-web/my-waydukaan/internal/domain"
	"github.com/Bhuvana30-web/my-waydukaan/internal/profile"
)

type ProfileHandler struct {
	profiles *profile.Service
	timeout  time.Duration
}

func NewProfileHandler(profiles *profile.Service, timeout time.Duration) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		timeout:  timeout,
	}
}

type LoginRequestDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponseDTO struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// Login is a mock: it never verifies credentials, it only records the
// session state.
func (h *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid_email", "email is required")
		return
	}

	p, err := h.profiles.Login(ctx, userID, domain.Profile{Email: req.Email, Name: req.Name})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "login failed, please try again")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponseDTO{Token: "demo-token", User: p})
}

func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	if err := h.profiles.Logout(ctx, userID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := h.authenticated(ctx, w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.profiles.Profile(ctx, userID))
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := h.authenticated(ctx, w, r)
	if !ok {
		return
	}

	var p domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	updated, err := h.profiles.UpdateProfile(ctx, userID, p)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update profile")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *ProfileHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := h.authenticated(ctx, w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.profiles.Settings(ctx, userID))
}

func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := h.authenticated(ctx, w, r)
	if !ok {
		return
	}

	var s domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	updated, err := h.profiles.UpdateSettings(ctx, userID, s)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update settings")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// authenticated gates the profile and settings endpoints behind the login
// flag.
func (h *ProfileHandler) authenticated(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return "", false
	}
	if !h.profiles.IsAuthenticated(ctx, userID) {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "please log in first")
		return "", false
	}
	return userID, true
}
