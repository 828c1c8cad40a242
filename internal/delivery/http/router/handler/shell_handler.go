// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"getlife/internal/delivery/http/response"
	"getlife/internal/infra/persistence/failover"
	"getlife/internal/view"
)

// ShellHandler serves the endpoints the front-end shell polls: service
// health with the active storage backend, and the screen to render.
type ShellHandler struct {
	facade *failover.Facade
	views  *view.Router
}

// NewShellHandler is the constructor for ShellHandler.
func NewShellHandler(facade *failover.Facade, views *view.Router) *ShellHandler {
	return &ShellHandler{
		facade: facade,
		views:  views,
	}
}

// Health reports liveness and which storage backend is active.
func (h *ShellHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": h.facade.Backend(),
	}, "Service is healthy")
}

// ViewState resolves the persisted session into the screen the shell
// should render.
func (h *ShellHandler) ViewState(c echo.Context) error {
	state := h.views.Resolve(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]any{
		"state": state,
	}, "")
}

type navigateRequest struct {
	Target string `json:"target" validate:"required"`
}

// Navigate moves the shell between the logged-out screens. A move the
// current state does not allow leaves the state unchanged; the
// response always carries the state the shell should render.
func (h *ShellHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid navigation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	state := h.views.Navigate(view.State(req.Target))

	return response.Success(c, http.StatusOK, map[string]any{
		"state": state,
	}, "")
}
