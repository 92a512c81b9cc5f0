package stripe

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claroapp/claro-api/internal/payment/entity"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
)

func newTestStripe(t *testing.T, handler http.HandlerFunc) *Stripe {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewStripe(Config{
		SecretKey:  "sk_test_123",
		BaseURL:    srv.URL,
		SuccessURL: "http://localhost:3000/success",
		CancelURL:  "http://localhost:3000/cancel",
		Timeout:    2 * time.Second,
		MaxRetries: 2,
	}, instrument.NewNoop())
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("success sends checkout form and returns url", func(t *testing.T) {
		var gotForm map[string]string
		s := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			require.NoError(t, r.ParseForm())

			gotForm = map[string]string{}
			for k := range r.PostForm {
				gotForm[k] = r.PostForm.Get(k)
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_1","url":"https://checkout.stripe.com/pay/cs_1"}`))
		})

		session, err := s.CreateCheckoutSession(t.Context(), 49.99, "USD")
		require.NoError(t, err)

		assert.Equal(t, "cs_1", session.ID)
		assert.Equal(t, "https://checkout.stripe.com/pay/cs_1", session.URL)

		assert.Equal(t, "payment", gotForm["mode"])
		assert.Equal(t, "http://localhost:3000/success", gotForm["success_url"])
		assert.Equal(t, "http://localhost:3000/cancel", gotForm["cancel_url"])
		assert.Equal(t, "1", gotForm["line_items[0][quantity]"])
		assert.Equal(t, "usd", gotForm["line_items[0][price_data][currency]"])
		assert.Equal(t, "4999", gotForm["line_items[0][price_data][unit_amount]"])
		assert.Equal(t, "AI Video Enhancement Service", gotForm["line_items[0][price_data][product_data][name]"])
	})

	t.Run("4xx returns provider error without retrying", func(t *testing.T) {
		var calls atomic.Int32
		s := newTestStripe(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid currency: xx","type":"invalid_request_error"}}`))
		})

		_, err := s.CreateCheckoutSession(t.Context(), 10, "xx")

		var provErr *entity.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "Invalid currency: xx", provErr.Message)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("5xx is retried until success", func(t *testing.T) {
		var calls atomic.Int32
		s := newTestStripe(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_2","url":"https://checkout.stripe.com/pay/cs_2"}`))
		})

		session, err := s.CreateCheckoutSession(t.Context(), 10, "usd")
		require.NoError(t, err)

		assert.Equal(t, "cs_2", session.URL[len(session.URL)-4:])
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("5xx exhausting retries fails", func(t *testing.T) {
		var calls atomic.Int32
		s := newTestStripe(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := s.CreateCheckoutSession(t.Context(), 10, "usd")
		require.Error(t, err)

		var provErr *entity.ProviderError
		assert.NotErrorAs(t, err, &provErr)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("amount converts to minor units by truncation", func(t *testing.T) {
		var gotUnitAmount string
		s := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotUnitAmount = r.PostForm.Get("line_items[0][price_data][unit_amount]")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_3","url":"https://checkout.stripe.com/pay/cs_3"}`))
		})

		_, err := s.CreateCheckoutSession(t.Context(), 10.999, "usd")
		require.NoError(t, err)
		assert.Equal(t, "1099", gotUnitAmount)
	})
}
