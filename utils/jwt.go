package utils

import (
	"time"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by admin bearer tokens.
type Claims struct {
	AdminID  uint   `json:"adminId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for an admin, valid for ttl.
func GenerateToken(admin *entity.Admin, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
