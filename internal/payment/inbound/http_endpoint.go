package inbound

import (
	"github.com/claroapp/claro-api/internal/payment/usecase"
	"github.com/claroapp/claro-api/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for checkout sessions.
type HTTPEndpoint struct {
	uc uc
}

// CreateSession creates a provider checkout session and returns its URL.
// A provider-side failure still answers 200 with the provider's error text
// in the body; the frontend reads it from there.
func (h *HTTPEndpoint) CreateSession(r *router.Request) (any, error) {
	var req CreateSessionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CreateSession(r.Context(), usecase.CreateSessionInput{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		return nil, err
	}

	if resp.ProviderError != "" {
		return CreateSessionResponse{Error: resp.ProviderError}, nil
	}

	return CreateSessionResponse{URL: resp.URL}, nil
}
