package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"getlife/internal/delivery/http/response"
	"getlife/internal/domain/entity"
	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/usecase"
	"getlife/internal/view"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	views  *view.Router
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, views *view.Router, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		views:  views,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=user mitra"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles the self-registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	registered, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registered, "Registrasi berhasil")
}

// Login handles the login request and moves the view to the role's
// dashboard on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	logged, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.views.LoggedIn(logged.Role)

	return response.Success(c, http.StatusOK, logged, "Login berhasil")
}

// Logout clears the session and returns the view to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	h.views.LoggedOut()

	return response.Success(c, http.StatusOK, nil, "Logout berhasil")
}

// Me returns the merged account/profile view of the logged-in
// identity.
func (h *AuthHandler) Me(c echo.Context) error {
	current, err := h.uc.CurrentUser(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if current == nil {
		return domainerrors.ErrNotAuthenticated
	}

	return response.Success(c, http.StatusOK, current, "")
}
