package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claroapp/claro-api/internal/identity/inbound"
	"github.com/claroapp/claro-api/internal/identity/outbound/db"
	"github.com/claroapp/claro-api/internal/identity/usecase"
	"github.com/claroapp/claro-api/internal/pkg/clock"
	"github.com/claroapp/claro-api/internal/pkg/hash"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/jwt"
	"github.com/claroapp/claro-api/internal/pkg/router"
	"github.com/claroapp/claro-api/internal/pkg/uid"
	"github.com/claroapp/claro-api/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.Codec                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repo,
		Validator:  dep.Validator,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
