package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Shantanu039/hotel-menu-order-app/internal/auth"
	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthProvider interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (entities.User, error)
}

type AuthHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          AuthProvider
	authenticate func(http.Handler) http.Handler
}

func NewAuthHandler(logger *slog.Logger, svc AuthProvider, authenticate func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{
		logger:       logger.With(slog.String("handler", "auth")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	r.With(h.authenticate).Get("/user/profile", h.Profile)
}

// Register creates an account and returns a bearer token.
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Param        request body RegisterRequest true "Credentials"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  utils.ErrorResponse "Email already registered"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, err := h.svc.Register(ctx, req.Email, req.Password)
	if errors.Is(err, entities.ErrEmailTaken) {
		utils.WriteError(w, "user with this email already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, TokenResponse{Token: token}, http.StatusCreated)
}

// Login verifies credentials and returns a bearer token.
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid credentials"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, entities.ErrInvalidCredentials) {
		utils.WriteError(w, "invalid credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to log in user", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

// Profile returns the authenticated user's account info.
// @Summary      Get profile
// @Tags         auth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /user/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := auth.ExtractIdentity(ctx)
	if !ok {
		utils.WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	user, err := h.svc.Profile(ctx, identity.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch profile", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         string(user.Role),
		RegisteredAt: user.RegisteredAt,
	}, http.StatusOK)
}
