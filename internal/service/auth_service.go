package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"medimeal/internal/auth"
	"medimeal/internal/errors"
	"medimeal/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a signed identity token. Unknown
// email and wrong password return the same error so callers cannot probe
// which emails exist.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
