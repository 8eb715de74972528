package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/drives-academy/academy-api/internal/config"
	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/token"
)

type mockUserRepo struct {
	users   map[string]domain.User
	creates int
	updated domain.UserPatch
	deleted int64
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
	m.creates++
	u.ID = int64(len(m.users) + 1)
	m.users[u.Email] = u
	return u, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	m.updated = patch
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "User"}
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	m.deleted = id
	return nil
}

func testAuthConfig() config.Auth {
	return config.Auth{
		Secret:     "test-secret",
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewCredentialService(repo, testAuthConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "Smith", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked from register")
	}

	got, signed, err := svc.Authenticate(ctx, "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected a signed token")
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked from authenticate")
	}

	claims, err := token.Verify(signed, []byte("test-secret"))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewCredentialService(repo, testAuthConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "Smith", "alice@example.com", "secret"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(ctx, "Alice", "Smith", "alice@example.com", "other")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected no second insert, got %d creates", repo.creates)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewCredentialService(repo, testAuthConfig())

	_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewCredentialService(repo, testAuthConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "Smith", "alice@example.com", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err := svc.Authenticate(ctx, "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewCredentialService(repo, testAuthConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "Smith", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	newPassword := "changed"
	if _, err := svc.Update(ctx, user.ID, UserUpdate{Password: &newPassword}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if repo.updated.PasswordHash == nil {
		t.Fatalf("expected password hash in patch")
	}
	if *repo.updated.PasswordHash == newPassword {
		t.Fatalf("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*repo.updated.PasswordHash), []byte(newPassword)); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUpdateWithoutPasswordLeavesHashUntouched(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewCredentialService(repo, testAuthConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "Smith", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Alicia"
	if _, err := svc.Update(ctx, user.ID, UserUpdate{Name: &name}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if repo.updated.PasswordHash != nil {
		t.Fatalf("password hash should not be touched")
	}
	if repo.updated.Name == nil || *repo.updated.Name != "Alicia" {
		t.Fatalf("expected name in patch")
	}
}
