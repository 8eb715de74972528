package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/service"
	"github.com/drives-academy/academy-api/token"
)

var testSecret = []byte("test-secret")

func setupProtected(t *testing.T) (*echo.Echo, *echo.Context) {
	t.Helper()

	mw := NewAuthMiddleware(service.NewAuthService(testSecret))

	e := echo.New()
	var captured echo.Context
	e.GET("/protected", func(c echo.Context) error {
		captured = c
		return c.String(http.StatusOK, "ok")
	}, mw.RequireAuth)

	return e, &captured
}

func TestRequireAuthMissingHeader(t *testing.T) {
	e, _ := setupProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	e, _ := setupProtected(t)

	cases := []string{
		"garbage",
		"Basic dXNlcjpwYXNz",
		"Bearer",
		"Bearer too many parts",
	}
	for _, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		res := httptest.NewRecorder()
		e.ServeHTTP(res, req)

		if res.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, res.Code)
		}
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	e, _ := setupProtected(t)

	signed, err := token.Issue(1, "alice@example.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.Code)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	e, _ := setupProtected(t)

	signed, err := token.Issue(1, "alice@example.com", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.Code)
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	e, captured := setupProtected(t)

	signed, err := token.Issue(42, "alice@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	ctx := (*captured).Request().Context()
	if id, _ := ctx.Value(domain.RequesterIDCtxKey).(int64); id != 42 {
		t.Fatalf("expected requester id 42, got %v", ctx.Value(domain.RequesterIDCtxKey))
	}
	if email, _ := ctx.Value(domain.RequesterEmailCtxKey).(string); email != "alice@example.com" {
		t.Fatalf("expected requester email, got %v", ctx.Value(domain.RequesterEmailCtxKey))
	}
}
