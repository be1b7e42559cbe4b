package consts

const (
	DefaultPage  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

const (
	PaymentCurrency   = "usd"
	PaymentMethodCard = "card"
)

// CtxEmail 写入 gin.Context 的键
const CtxEmail = "email"

type ctxKey struct{ name string }

// EmailCtxKey 写入 request context 的已验证 email
var EmailCtxKey = ctxKey{name: "email"}
