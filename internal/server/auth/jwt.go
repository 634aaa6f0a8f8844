// Package auth implements the signed session tokens and password hashing
// used by the portal. Tokens are stateless: validity is determined solely
// by the HMAC signature and the embedded expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samuelnapitupulu18/NusaCare/internal/common"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/models"
)

// Claims carries the registered claims plus the account role. The subject
// is the user's email address.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// GenerateToken issues an HS256-signed token for the given subject with
// expiry set to now + validityDuration.
func GenerateToken(email string, role models.Role, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Role: role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a token and returns its
// claims. Expired tokens yield common.ErrorTokenExpired; any other failure
// yields common.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrorInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrorTokenExpired
		}
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
