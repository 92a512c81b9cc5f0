package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/codes"

	"github.com/claroapp/claro-api/internal/payment/entity"
	"github.com/claroapp/claro-api/internal/pkg/instrument"
)

const (
	defaultBaseURL = "https://api.stripe.com"
	productName    = "AI Video Enhancement Service"
)

type Config struct {
	// SecretKey authenticates against the Stripe API.
	SecretKey string
	// BaseURL overrides the API host, mainly for tests.
	BaseURL string
	// SuccessURL is where Stripe redirects after a completed payment.
	SuccessURL string
	// CancelURL is where Stripe redirects after an abandoned payment.
	CancelURL string
	// Timeout bounds each HTTP attempt.
	Timeout time.Duration
	// MaxRetries bounds retry attempts for transport failures and 5xx.
	MaxRetries uint64
}

type Stripe struct {
	client     *resty.Client
	successURL string
	cancelURL  string
	maxRetries uint64
	ins        instrument.Instrumentation
}

func NewStripe(cfg Config, ins instrument.Instrumentation) *Stripe {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SecretKey)

	return &Stripe{
		client:     cli,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		maxRetries: cfg.MaxRetries,
		ins:        ins,
	}
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateCheckoutSession creates a hosted checkout page for a one-time
// payment. The amount is given in major units and converted to the minor
// units Stripe expects. Transport failures and 5xx responses are retried
// with exponential backoff; a 4xx is the provider's final word and is
// returned as a ProviderError without retrying.
func (s *Stripe) CreateCheckoutSession(ctx context.Context, amount float64, currency string) (_ *entity.CheckoutSession, err error) {
	ctx, span := s.ins.Tracer("payment.outbound.stripe").Start(ctx, "CreateCheckoutSession")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	form := map[string]string{
		"mode":        "payment",
		"success_url": s.successURL,
		"cancel_url":  s.cancelURL,
	}
	form["line_items[0][quantity]"] = "1"
	form["line_items[0][price_data][currency]"] = strings.ToLower(currency)
	form["line_items[0][price_data][unit_amount]"] = strconv.FormatInt(int64(amount*100), 10)
	form["line_items[0][price_data][product_data][name]"] = productName

	var session sessionResponse

	backoff := retry.WithCappedDuration(5*time.Second, retry.NewExponential(500*time.Millisecond))
	backoff = retry.WithMaxRetries(s.maxRetries, backoff)

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, errDo := s.client.R().
			SetContext(ctx).
			SetFormData(form).
			Post("/v1/checkout/sessions")
		if errDo != nil {
			return retry.RetryableError(fmt.Errorf("checkout session request: %w", errDo))
		}

		if resp.StatusCode() >= 500 {
			return retry.RetryableError(fmt.Errorf("stripe responded %d", resp.StatusCode()))
		}

		if resp.IsError() {
			var errResp errorResponse
			if errJSON := json.Unmarshal(resp.Body(), &errResp); errJSON == nil && errResp.Error.Message != "" {
				return &entity.ProviderError{Message: errResp.Error.Message}
			}
			return &entity.ProviderError{Message: strings.TrimSpace(string(resp.Body()))}
		}

		if errJSON := json.Unmarshal(resp.Body(), &session); errJSON != nil {
			return fmt.Errorf("decode checkout session: %w", errJSON)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
