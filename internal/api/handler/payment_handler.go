package handler

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreatePaymentIntent POST /create-payment-intent
func (s *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.PaymentIntentReq
	if !bindJSON(c, &req) {
		return
	}

	intent, err := s.paymentSvc.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PaymentIntentDTO{ClientSecret: intent.ClientSecret})
}
