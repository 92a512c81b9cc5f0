package payment

import (
	"github.com/claroapp/claro-api/internal/payment/inbound"
	"github.com/claroapp/claro-api/internal/payment/outbound/stripe"
	"github.com/claroapp/claro-api/internal/payment/usecase"
	"github.com/claroapp/claro-api/internal/pkg/config"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/router"
	"github.com/claroapp/claro-api/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	provider := stripe.NewStripe(stripe.Config{
		SecretKey:  dep.Config.GetString("modules.payment.stripe.secret_key"),
		BaseURL:    dep.Config.GetString("modules.payment.stripe.base_url"),
		SuccessURL: dep.Config.GetString("modules.payment.stripe.success_url"),
		CancelURL:  dep.Config.GetString("modules.payment.stripe.cancel_url"),
		Timeout:    dep.Config.GetSecond("modules.payment.stripe.timeout_seconds"),
		MaxRetries: uint64(dep.Config.GetInt("modules.payment.stripe.max_retries")),
	}, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Provider:   provider,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
