package stripe

import (
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/model"
	"ForumFlare/internal/service"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrNotConfigured = errors.New("stripe secret key not configured")

// Gateway 基于 Stripe PaymentIntents 的支付网关
type Gateway struct {
	api *client.API
}

// InitStripe 创建网关，密钥为空时仍可启动，调用时返回 ErrNotConfigured
func InitStripe(cfg config.StripeConfig) *Gateway {
	if cfg.SecretKey == "" {
		log.Warn("stripe secret key is empty, payment intents are disabled")
		return &Gateway{}
	}
	return &Gateway{api: client.New(cfg.SecretKey, nil)}
}

func newGateway(key string, backends *stripe.Backends) *Gateway {
	return &Gateway{api: client.New(key, backends)}
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, methodTypes []string) (*model.PaymentIntent, error) {
	if g.api == nil {
		return nil, ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methodTypes),
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode >= http.StatusBadRequest &&
			stripeErr.HTTPStatusCode < http.StatusInternalServerError &&
			stripeErr.HTTPStatusCode != http.StatusUnauthorized && stripeErr.HTTPStatusCode != http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %s", service.ErrGatewayRejected, stripeErr.Msg)
		}
		return nil, err
	}

	return &model.PaymentIntent{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		ClientSecret: pi.ClientSecret,
	}, nil
}
