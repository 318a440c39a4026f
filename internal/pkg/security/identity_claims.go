package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTExpirationTime = time.Hour * 24
)

// IdentityClaims 身份提供方 Token 中携带的业务信息
type IdentityClaims struct {
	ExternalID   string `json:"sub_id"`
	Email        string `json:"email"`
	Subscription bool   `json:"subscription"` // 是否持有有效订阅，内推提交的前置门槛
	jwt.RegisteredClaims
}
