package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"getlife/internal/domain/entity"
	domainerrors "getlife/internal/domain/errors"
	"getlife/internal/usecase"
)

// currentUserKey is the echo context key the resolved identity is
// stored under.
const currentUserKey = "currentUser"

// AuthMiddleware resolves the persisted session into the request
// context. There are no tokens; the session holder is the single
// source of truth for who is logged in.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate rejects the request when nobody is logged in and
// otherwise stores the merged account/profile view on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, err := m.auth.CurrentUser(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}
		if current == nil {
			return domainerrors.ErrNotAuthenticated
		}

		c.Set(currentUserKey, current)

		return next(c)
	}
}

// RequireRole checks the authenticated identity's role. It must be
// used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current := CurrentUser(c)
			if current == nil || current.Role != required {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// CurrentUser returns the identity the Authenticate middleware stored,
// or nil on an unauthenticated route.
func CurrentUser(c echo.Context) *entity.AccountProfile {
	current, _ := c.Get(currentUserKey).(*entity.AccountProfile)

	return current
}
