package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/claroapp/claro-api/internal/payment/entity"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/validator"
)

type repoProvider interface {
	CreateCheckoutSession(ctx context.Context, amount float64, currency string) (*entity.CheckoutSession, error)
}

type Usecase struct {
	provider  repoProvider
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	Provider   repoProvider
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		provider:  dep.Provider,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("payment.usecase").Start(ctx, name)
}
