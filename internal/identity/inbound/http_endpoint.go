package inbound

import (
	"github.com/claroapp/claro-api/internal/identity/usecase"
	"github.com/claroapp/claro-api/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for registration, login and profile.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new account and confirms with a plain text message.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return router.Text("User registered successfully!"), nil
}

// Login verifies credentials and returns the raw bearer token as plain text.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return router.Text(resp.AccessToken), nil
}

// Profile returns the account of the authenticated token subject.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{Email: resp.Email}, nil
}
