package service

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/drives-academy/academy-api/internal/config"
	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/token"
)

// UserRepository is the persistence surface the credential flow needs.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// CredentialService registers accounts and exchanges passwords for signed
// tokens. The password hash never crosses this boundary outward.
type CredentialService struct {
	repo       UserRepository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewCredentialService(repo UserRepository, auth config.Auth) *CredentialService {
	return &CredentialService{
		repo:       repo,
		secret:     []byte(auth.Secret),
		tokenTTL:   auth.TTL,
		bcryptCost: auth.BcryptCost,
	}
}

// UserUpdate carries a sparse account update. Password, when present, is
// re-hashed before it reaches storage.
type UserUpdate struct {
	Name     *string
	Surname  *string
	Email    *string
	Password *string
}

func (s *CredentialService) Register(ctx context.Context, name, surname, email, password string) (domain.User, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, pkgerrors.Wrap(err, "CredentialService.Register: lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.User{}, pkgerrors.Wrap(err, "CredentialService.Register: hashing failed")
	}

	user, err := s.repo.Create(ctx, domain.User{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.User{}, domain.ErrAlreadyExists
		}
		return domain.User{}, pkgerrors.Wrap(err, "CredentialService.Register: insert failed")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *CredentialService) Authenticate(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", err
		}
		return domain.User{}, "", pkgerrors.Wrap(err, "CredentialService.Authenticate: lookup failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	signed, err := token.Issue(user.ID, user.Email, s.secret, s.tokenTTL)
	if err != nil {
		return domain.User{}, "", pkgerrors.Wrap(err, "CredentialService.Authenticate: token issuance failed")
	}

	user.PasswordHash = ""
	return user, signed, nil
}

func (s *CredentialService) GetByID(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *CredentialService) Update(ctx context.Context, id int64, update UserUpdate) (domain.User, error) {
	patch := domain.UserPatch{
		Name:    update.Name,
		Surname: update.Surname,
		Email:   update.Email,
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.bcryptCost)
		if err != nil {
			return domain.User{}, pkgerrors.Wrap(err, "CredentialService.Update: hashing failed")
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *CredentialService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
