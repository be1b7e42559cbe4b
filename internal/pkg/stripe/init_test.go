package stripe

import (
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/service"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func testGateway(t *testing.T, h http.HandlerFunc) *Gateway {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newGateway("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestCreatePaymentIntent(t *testing.T) {
	var form url.Values
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"pi_123","object":"payment_intent","amount":1999,"currency":"usd","client_secret":"pi_123_secret_abc"}`)
	})

	pi, err := g.CreatePaymentIntent(context.Background(), 1999, "usd", []string{"card"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", pi.ClientSecret)
	assert.Equal(t, int64(1999), pi.Amount)
	assert.Equal(t, "1999", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
}

func TestCreatePaymentIntentRejected(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","code":"amount_too_small","message":"Amount must be at least $0.50 usd"}}`)
	})

	_, err := g.CreatePaymentIntent(context.Background(), 10, "usd", []string{"card"})
	assert.ErrorIs(t, err, service.ErrGatewayRejected)
}

func TestCreatePaymentIntentServerError(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"type":"api_error","message":"boom"}}`)
	})

	_, err := g.CreatePaymentIntent(context.Background(), 1999, "usd", []string{"card"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrGatewayRejected)
}

func TestGatewayWithoutKey(t *testing.T) {
	_, err := InitStripe(config.StripeConfig{}).CreatePaymentIntent(context.Background(), 100, "usd", []string{"card"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
