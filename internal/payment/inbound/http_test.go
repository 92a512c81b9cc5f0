package inbound_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claroapp/claro-api/internal/payment/entity"
	"github.com/claroapp/claro-api/internal/payment/inbound"
	"github.com/claroapp/claro-api/internal/payment/usecase"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
	"github.com/claroapp/claro-api/internal/pkg/jwt"
	"github.com/claroapp/claro-api/internal/pkg/router"
	"github.com/claroapp/claro-api/internal/pkg/uid"
	"github.com/claroapp/claro-api/internal/pkg/validator"
)

type staticProvider struct {
	session *entity.CheckoutSession
	err     error
}

func (f staticProvider) CreateCheckoutSession(context.Context, float64, string) (*entity.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type passCodec struct{}

func (passCodec) Generate(string) (string, error) { return "", nil }

func (passCodec) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, jwt.ErrTokenMalformed }

func newPaymentRouter(t *testing.T, provider staticProvider) *router.Router {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	ro := router.NewRouter(router.Config{
		UUID: uid.NewUUID(),
		JWT:  passCodec{},
		Policy: router.NewPolicy(
			router.Rule{Pattern: "/api/payment/", Access: router.AccessPublic},
		),
		Instrument: instrument.NewNoop(),
	})

	uc := usecase.New(usecase.Dependency{
		Provider:   provider,
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})

	inbound.RegisterHTTPEndpoint(ro, uc)
	return ro
}

func TestCreateSessionEndpoint(t *testing.T) {
	t.Run("success returns only the url", func(t *testing.T) {
		ro := newPaymentRouter(t, staticProvider{
			session: &entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/pay/cs_1"},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/payment/create-session",
			strings.NewReader(`{"amount":49.99,"currency":"usd"}`))
		rec := httptest.NewRecorder()
		ro.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://checkout.stripe.com/pay/cs_1"}`, rec.Body.String())
	})

	t.Run("provider failure answers 200 with the provider text", func(t *testing.T) {
		ro := newPaymentRouter(t, staticProvider{
			err: &entity.ProviderError{Message: "No such customer: cus_404"},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/payment/create-session",
			strings.NewReader(`{"amount":10,"currency":"usd"}`))
		rec := httptest.NewRecorder()
		ro.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":"No such customer: cus_404"}`, rec.Body.String())
	})

	t.Run("public even without a token", func(t *testing.T) {
		ro := newPaymentRouter(t, staticProvider{
			session: &entity.CheckoutSession{URL: "https://checkout.stripe.com/pay/cs_2"},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/payment/create-session",
			strings.NewReader(`{"amount":5,"currency":"eur"}`))
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		ro.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid body is rejected", func(t *testing.T) {
		ro := newPaymentRouter(t, staticProvider{})

		req := httptest.NewRequest(http.MethodPost, "/api/payment/create-session",
			strings.NewReader(`{"amount":"ten"}`))
		rec := httptest.NewRecorder()
		ro.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
