package service

import (
	"ForumFlare/internal/model"
	"ForumFlare/internal/pkg/consts"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"math"
)

// ErrGatewayRejected 支付网关认为请求本身不合法（如金额低于最小值）
var ErrGatewayRejected = errors.New("payment request rejected")

// PaymentGateway 外部支付处理方
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, methodTypes []string) (*model.PaymentIntent, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (*model.PaymentIntent, error)
}

type paymentServiceImpl struct {
	gateway PaymentGateway
}

func NewPaymentService(gateway PaymentGateway) PaymentService {
	return &paymentServiceImpl{gateway: gateway}
}

// maxPrice 单笔上限（美元），换算为美分后远小于 MaxInt64
const maxPrice = 1e15

// ToMinorUnits 美元转美分，四舍五入，调用方需保证 price 不超过 maxPrice
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent 不携带幂等键，客户端重试会产生多个 intent
func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, price float64) (*model.PaymentIntent, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 || price > maxPrice {
		return nil, ErrPriceInvalid
	}
	amount := ToMinorUnits(price)
	if amount <= 0 {
		return nil, ErrPriceInvalid
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amount, consts.PaymentCurrency, []string{consts.PaymentMethodCard})
	if err != nil {
		if errors.Is(err, ErrGatewayRejected) {
			return nil, fmt.Errorf("%w: %v", ErrParamInvalid, err)
		}
		log.ErrorContext(ctx, "create payment intent error", "amount", amount, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	log.InfoContext(ctx, "payment intent created", "intent_id", intent.ID, "amount", amount)
	return intent, nil
}
