package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	byEmail map[string]entities.User
	byID    map[string]entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byEmail: make(map[string]entities.User),
		byID:    make(map[string]entities.User),
	}
}

func (r *memUserRepo) SaveUser(_ context.Context, u entities.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return entities.ErrEmailTaken
	}
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (entities.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

// fakeSigner produces an inspectable token instead of a real JWT.
type fakeSigner struct{}

func (fakeSigner) Sign(userID string, role entities.Role) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, role), nil
}

func newAuthService(repo *memUserRepo) *service.AuthService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewAuthService(logger, repo, fakeSigner{})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("stores hashed password and issues token", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := newAuthService(repo)

		token, err := svc.Register(context.Background(), "a@b.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		user, ok := repo.byEmail["a@b.com"]
		require.True(t, ok)
		assert.Equal(t, entities.RoleUser, user.Role)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.Equal(t, fmt.Sprintf("token:%s:user", user.ID), token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(context.Background(), "a@b.com", "secret123")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "a@b.com", "another")
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "a@b.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@b.com", "wrong")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@b.com", "secret123")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})
}

func TestAuthService_Profile(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)
	saved := repo.byEmail["a@b.com"]

	user, err := svc.Profile(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, user)

	_, err = svc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}
