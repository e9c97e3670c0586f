package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	SaveUser(ctx context.Context, u entities.User) error
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
}

type TokenSigner interface {
	Sign(userID string, role entities.Role) (string, error)
}

type AuthService struct {
	logger *slog.Logger
	repo   UserRepo
	tokens TokenSigner
}

func NewAuthService(logger *slog.Logger, repo UserRepo, tokens TokenSigner) *AuthService {
	return &AuthService{
		logger: logger.With(slog.String("service", "auth")),
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a user account and returns a signed token for it.
// New accounts always get the user role; admins are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		RegisteredAt: time.Now().UTC(),
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return "", err
	}

	s.logger.Debug("user registered", slog.String("user_id", user.ID))
	return s.tokens.Sign(user.ID, user.Role)
}

// Login verifies the credentials and returns a signed token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		return "", entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.ErrInvalidCredentials
	}

	return s.tokens.Sign(user.ID, user.Role)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (entities.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}
