package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(1000), ToMinorUnits(10))
	assert.Equal(t, int64(29), ToMinorUnits(0.29))
}

func TestCreatePaymentIntentDelegates(t *testing.T) {
	gw := &fakeGateway{}
	intent, err := NewPaymentService(gw).CreatePaymentIntent(context.Background(), 19.99)
	require.NoError(t, err)

	assert.Equal(t, int64(1999), gw.amount)
	assert.Equal(t, "usd", gw.currency)
	assert.Equal(t, []string{"card"}, gw.methods)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
}

func TestCreatePaymentIntentRejectsBadPrice(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw)
	for _, price := range []float64{0, -5, 0.001, math.NaN(), math.Inf(1), 1e19, math.MaxFloat64} {
		_, err := svc.CreatePaymentIntent(context.Background(), price)
		assert.ErrorIs(t, err, ErrPriceInvalid, "price %v", price)
	}
	assert.Zero(t, gw.amount)
}

func TestCreatePaymentIntentGatewayErrors(t *testing.T) {
	gw := &fakeGateway{err: errors.New("timeout")}
	_, err := NewPaymentService(gw).CreatePaymentIntent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPaymentUnavailable)

	gw.err = fmt.Errorf("%w: amount too small", ErrGatewayRejected)
	_, err = NewPaymentService(gw).CreatePaymentIntent(context.Background(), 0.1)
	assert.ErrorIs(t, err, ErrParamInvalid)
}
