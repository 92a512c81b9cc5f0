package inbound

import (
	"context"

	"github.com/claroapp/claro-api/internal/identity/usecase"
	"github.com/claroapp/claro-api/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/auth/register", end.Register)
	r.POST("/auth/login", end.Login)

	// need authenticated
	r.GET("/api/profile", end.Profile)
}
