package security

import (
	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "ForumFlare"

// UserClaims Token 中携带的身份信息
type UserClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
