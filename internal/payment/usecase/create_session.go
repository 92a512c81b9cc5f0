package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/claroapp/claro-api/internal/payment/entity"
	"github.com/claroapp/claro-api/internal/pkg/goerror"
)

type CreateSessionInput struct {
	Amount   float64 `validate:"required,gt=0"`
	Currency string  `validate:"required,len=3,alpha"`
}

type CreateSessionOutput struct {
	URL string
	// ProviderError holds the provider's error text when session creation
	// fails on the provider side. Callers surface it in the response body
	// instead of an error status; existing clients read it from there.
	ProviderError string
}

func (s *Usecase) CreateSession(ctx context.Context, in CreateSessionInput) (*CreateSessionOutput, error) {
	ctx, span := s.startSpan(ctx, "CreateSession")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	session, err := s.provider.CreateCheckoutSession(ctx, in.Amount, in.Currency)

	var provErr *entity.ProviderError
	if errors.As(err, &provErr) {
		slog.WarnContext(ctx, "provider rejected checkout session", "currency", in.Currency, "error", provErr.Message)
		return &CreateSessionOutput{ProviderError: provErr.Message}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to create checkout session", "currency", in.Currency, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CreateSessionOutput{URL: session.URL}, nil
}
