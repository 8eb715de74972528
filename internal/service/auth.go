package service

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/drives-academy/academy-api/token"
)

var tracer = otel.Tracer("auth")

// AuthService verifies bearer tokens presented on protected routes.
type AuthService struct {
	secret []byte
}

func NewAuthService(secret []byte) *AuthService {
	return &AuthService{secret: secret}
}

type AuthResult struct {
	UserID int64
	Email  string
}

func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*AuthResult, error) {
	_, span := tracer.Start(ctx, "Auth.Service.VerifyToken")
	defer span.End()

	claims, err := token.Verify(tokenString, s.secret)
	if err != nil {
		span.RecordError(errors.Wrap(err, "token verification failed"))
		return nil, err
	}

	return &AuthResult{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
