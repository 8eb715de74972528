package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/presenter"
	"github.com/drives-academy/academy-api/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// requester identity to the request context for downstream handlers.
func (s *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAuth")
		defer span.End()

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return presenter.Unauthorized(c)
		}

		split := strings.Split(authHeader, " ")
		if len(split) != 2 {
			span.RecordError(errors.New("invalid authentication header"))
			return presenter.Unauthorized(c)
		}

		authType, tokenString := split[0], split[1]
		if authType != "Bearer" {
			span.RecordError(errors.New("only Bearer is acceptable"))
			return presenter.Unauthorized(c)
		}

		result, err := s.auth.VerifyToken(ctx, tokenString)
		if err != nil {
			span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireAuth: token verification failed"))
			return presenter.Forbidden(c)
		}

		ctx = context.WithValue(ctx, domain.RequesterIDCtxKey, result.UserID)
		ctx = context.WithValue(ctx, domain.RequesterEmailCtxKey, result.Email)
		span.SetAttributes(attribute.Int64("RequesterId", result.UserID))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
