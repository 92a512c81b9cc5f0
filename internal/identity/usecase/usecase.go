package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/claroapp/claro-api/internal/identity/entity"
	"github.com/claroapp/claro-api/internal/pkg/clock"
	"github.com/claroapp/claro-api/internal/pkg/hash"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/jwt"
	"github.com/claroapp/claro-api/internal/pkg/uid"
	"github.com/claroapp/claro-api/internal/pkg/validator"
)

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.User) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	bcrypt    hash.Hash
	uid       uid.NumberID
	clock     clock.Clocker
	jwt       jwt.Codec
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Bcrypt     hash.Hash
	UID        uid.NumberID
	Clock      clock.Clocker
	JWT        jwt.Codec
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
