package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed is returned when the token cannot be parsed at all.
	ErrMalformed = errors.New("token is malformed")
	// ErrBadSignature is returned when the signature does not match the payload.
	ErrBadSignature = errors.New("token signature is invalid")
	// ErrExpired is returned when the token is past its expiry.
	ErrExpired = errors.New("token is expired")
)

// Claims is the identity payload embedded in a signed token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issue creates a server signed token carrying the user identity.
func Issue(userID int64, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// Failures are collapsed into ErrMalformed, ErrBadSignature or ErrExpired.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}

	if !tok.Valid {
		return nil, ErrBadSignature
	}

	return claims, nil
}
