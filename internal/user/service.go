package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
)

const tokenTTL = 72 * time.Hour

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
)

type Service interface {
	Signup(ctx context.Context, dto SignupDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, code string) (*AuthResponse, error)
	Refresh(ctx context.Context, claims *auth.UserClaims) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, dto ChangePasswordDTO) error
}

type service struct {
	repo   Repository
	google GoogleAuthenticator
}

func NewService(repo Repository, google GoogleAuthenticator) Service {
	return &service{repo: repo, google: google}
}

func (s *service) Signup(ctx context.Context, dto SignupDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if name == "" || email == "" || len(dto.Password) < 8 {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Provider:     ProviderPassword,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	log.Infof("Registered new user %s", u.ID)
	return s.authResponse(u)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Provider != ProviderPassword {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if s.google == nil {
		return nil, errors.New("google login is not configured")
	}

	info, err := s.google.Authenticate(ctx, code)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(info.Email)
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			ID:       uuid.New(),
			Name:     info.Name,
			Email:    email,
			Provider: ProviderGoogle,
		}
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
		log.Infof("Registered new Google user %s", u.ID)
	}

	return s.authResponse(u)
}

func (s *service) Refresh(ctx context.Context, claims *auth.UserClaims) (string, error) {
	return auth.GenerateJWT(claims.UserID, claims.Role, tokenTTL)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) UpdateName(ctx context.Context, id uuid.UUID, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Name = name
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, id uuid.UUID, dto ChangePasswordDTO) error {
	if len(dto.NewPassword) < 8 {
		return ErrInvalidInput
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Provider != ProviderPassword {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return s.repo.Update(u)
}

func (s *service) authResponse(u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), "user", tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}
