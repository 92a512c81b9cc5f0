package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/claroapp/claro-api/internal/pkg/goerror"
	"github.com/claroapp/claro-api/internal/pkg/jwt"
)

type ProfileOutput struct {
	Email string
}

// Profile returns the account behind the verified token subject.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, clm.Subject)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", clm.Subject)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", clm.Subject, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{Email: user.Email}, nil
}
