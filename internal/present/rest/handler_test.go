package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/drives-academy/academy-api/internal/config"
	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/present/rest/middleware"
	"github.com/drives-academy/academy-api/internal/service"
)

// --- mocks ---

type mockUserRepo struct {
	users  map[string]domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]domain.User{}}
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.NotFoundError{Resource: "User"}
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "User"}
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	m.nextID++
	u.ID = m.nextID
	m.users[u.Email] = u
	return u, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	for email, u := range m.users {
		if u.ID == id {
			if patch.Name != nil {
				u.Name = *patch.Name
			}
			m.users[email] = u
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "User"}
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "User"}
}

// --- helpers ---

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	auth := config.Auth{
		Secret:     "test-secret",
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	credential := service.NewCredentialService(newMockUserRepo(), auth)
	authService := service.NewAuthService([]byte(auth.Secret))

	h := NewHandler(credential, nil, nil, nil, nil, nil, nil)

	e := echo.New()
	e.Validator = NewValidator()
	h.RegisterRoutes(e, middleware.NewAuthMiddleware(authService))
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	return res
}

// --- tests ---

func TestRegisterHidesPassword(t *testing.T) {
	e := setupServer(t)

	res := doJSON(t, e, http.MethodPost, "/users/register", map[string]string{
		"name":     "Alice",
		"surname":  "Smith",
		"email":    "alice@example.com",
		"password": "secret",
	})

	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", res.Code, res.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["id"] == nil {
		t.Fatalf("expected id in response")
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("password leaked in response")
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatalf("password hash leaked in response")
	}
}

func TestRegisterValidation(t *testing.T) {
	e := setupServer(t)

	res := doJSON(t, e, http.MethodPost, "/users/register", map[string]string{
		"name":  "Alice",
		"email": "not-an-email",
	})

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	e := setupServer(t)

	payload := map[string]string{
		"name":     "Alice",
		"surname":  "Smith",
		"email":    "alice@example.com",
		"password": "secret",
	}

	if res := doJSON(t, e, http.MethodPost, "/users/register", payload); res.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", res.Code)
	}
	res := doJSON(t, e, http.MethodPost, "/users/register", payload)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("second register: expected 400, got %d", res.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	e := setupServer(t)

	res := doJSON(t, e, http.MethodPost, "/users/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret",
	})

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["message"] != "User not found" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	e := setupServer(t)

	doJSON(t, e, http.MethodPost, "/users/register", map[string]string{
		"name":     "Alice",
		"surname":  "Smith",
		"email":    "alice@example.com",
		"password": "secret",
	})

	res := doJSON(t, e, http.MethodPost, "/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	e := setupServer(t)

	doJSON(t, e, http.MethodPost, "/users/register", map[string]string{
		"name":     "Alice",
		"surname":  "Smith",
		"email":    "alice@example.com",
		"password": "secret",
	})

	res := doJSON(t, e, http.MethodPost, "/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret",
	})

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var body struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected a token")
	}
	if _, ok := body.User["password"]; ok {
		t.Fatalf("password leaked in response")
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	e := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestTokenFromLoginOpensProtectedRoute(t *testing.T) {
	e := setupServer(t)

	doJSON(t, e, http.MethodPost, "/users/register", map[string]string{
		"name":     "Alice",
		"surname":  "Smith",
		"email":    "alice@example.com",
		"password": "secret",
	})

	login := doJSON(t, e, http.MethodPost, "/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret",
	})
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid login body: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
}
