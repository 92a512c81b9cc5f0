package inbound

import (
	"context"

	"github.com/claroapp/claro-api/internal/payment/usecase"
	"github.com/claroapp/claro-api/internal/pkg/router"
)

type uc interface {
	CreateSession(ctx context.Context, in usecase.CreateSessionInput) (*usecase.CreateSessionOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/payment/create-session", end.CreateSession)
}
