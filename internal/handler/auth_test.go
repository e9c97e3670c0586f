package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/internal/handler"
	"github.com/Shantanu039/hotel-menu-order-app/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthProvider struct {
	register func(ctx context.Context, email, password string) (string, error)
	login    func(ctx context.Context, email, password string) (string, error)
	profile  func(ctx context.Context, userID string) (entities.User, error)
}

func (s *stubAuthProvider) Register(ctx context.Context, email, password string) (string, error) {
	return s.register(ctx, email, password)
}

func (s *stubAuthProvider) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

func (s *stubAuthProvider) Profile(ctx context.Context, userID string) (entities.User, error) {
	return s.profile(ctx, userID)
}

func newAuthRouter(svc *stubAuthProvider) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAuthHandler(logger, svc, middleware.Authenticate(stubVerifier{}))

	router := chi.NewRouter()
	h.Init(router)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router := newAuthRouter(&stubAuthProvider{
			register: func(_ context.Context, email, password string) (string, error) {
				assert.Equal(t, "a@b.com", email)
				assert.Equal(t, "secret123", password)
				return "signed-token", nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/auth/register", "", `{"email":"a@b.com","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var res handler.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "signed-token", res.Token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router := newAuthRouter(&stubAuthProvider{
			register: func(context.Context, string, string) (string, error) {
				return "", entities.ErrEmailTaken
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/auth/register", "", `{"email":"a@b.com","password":"secret123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		router := newAuthRouter(&stubAuthProvider{
			register: func(context.Context, string, string) (string, error) {
				t.Fatal("service must not be called")
				return "", nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/auth/register", "", `{"email":"a@b.com","password":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router := newAuthRouter(&stubAuthProvider{
			login: func(context.Context, string, string) (string, error) {
				return "signed-token", nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/auth/login", "", `{"email":"a@b.com","password":"secret123"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		router := newAuthRouter(&stubAuthProvider{
			login: func(context.Context, string, string) (string, error) {
				return "", entities.ErrInvalidCredentials
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/auth/login", "", `{"email":"a@b.com","password":"wrong"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	registeredAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	router := newAuthRouter(&stubAuthProvider{
		profile: func(_ context.Context, userID string) (entities.User, error) {
			return entities.User{
				ID:           userID,
				Email:        "a@b.com",
				Role:         entities.RoleUser,
				RegisteredAt: registeredAt,
			}, nil
		},
	})

	t.Run("requires token", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/user/profile", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns caller profile", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/user/profile", "user-token", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var res handler.ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, "a@b.com", res.Email)
		assert.Equal(t, "user", res.Role)
	})
}
