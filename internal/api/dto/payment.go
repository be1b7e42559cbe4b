package dto

// PaymentIntentReq 创建支付意图，price 为美元
type PaymentIntentReq struct {
	Price float64 `json:"price" binding:"required"`
}

// PaymentIntentDTO 返回给前端的 client secret
type PaymentIntentDTO struct {
	ClientSecret string `json:"clientSecret"`
}
