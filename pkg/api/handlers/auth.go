package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/auth"
	"github.com/summitfg/summit-api/pkg/metrics"
	"github.com/summitfg/summit-api/pkg/models"
	"github.com/summitfg/summit-api/pkg/users"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users              *users.Service
	jwtSecret          string
	jwtExpirationHours int
	metrics            *metrics.Metrics
	validator          *validator.Validate
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService *users.Service, jwtSecret string, jwtExpirationHours int, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		users:              userService,
		jwtSecret:          jwtSecret,
		jwtExpirationHours: jwtExpirationHours,
		metrics:            m,
		validator:          validator.New(),
	}
}

// Register creates a new team member account and returns a signed token.
func (h *AuthHandler) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	user, err := h.users.Register(ctx, req)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return apierrors.ConflictError(c, "An account with this email already exists.")
		}
		return apierrors.DatabaseError(c, err)
	}

	token, err := auth.GenerateJWT(int(user.ID), user.Email, user.Role, h.jwtSecret, h.jwtExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Login verifies credentials and returns a signed token.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	user, err := h.users.Authenticate(ctx, req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			if h.metrics != nil {
				h.metrics.RecordLoginAttempt(false)
			}
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Email or password is incorrect.",
			})
		}
		return apierrors.DatabaseError(c, err)
	}

	token, err := auth.GenerateJWT(int(user.ID), user.Email, user.Role, h.jwtSecret, h.jwtExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(true)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}
