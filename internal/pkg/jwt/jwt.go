// Package jwt encodes and verifies the bearer tokens used for request
// authentication. Tokens are stateless HS256 JWTs; validity is determined
// purely by signature and expiry at verification time, so an issued token
// cannot be revoked before its natural expiry.
package jwt

import (
	"errors"
	"time"

	"phonestore-api/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures. Each maps to a distinct user-visible outcome.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")
)

// Claims represents the JWT claims carried in an access token
type Claims struct {
	UserID   uuid.UUID   `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal builds the request principal from verified claims.
func (c *Claims) Principal() *domain.Principal {
	return &domain.Principal{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}

// Issue generates a signed access token for the given identity.
// Expiry is a fixed offset from issuance (ttlHours).
func Issue(userID uuid.UUID, username string, role domain.Role, secret string, ttlHours int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "phonestore-api",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token and returns its claims.
// Returns ErrTokenMalformed if the token cannot be parsed, ErrBadSignature
// if the signature does not match the secret, ErrTokenExpired if the current
// time is at or past the encoded expiry.
func Verify(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return []byte(secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrBadSignature):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
