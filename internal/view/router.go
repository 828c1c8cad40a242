// Package view tracks which top-level screen the front-end shell shows.
// It is a small state machine seeded from the persisted session, so a
// restarted client lands back on the dashboard it was on.
package view

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"getlife/internal/domain/entity"
	"getlife/internal/usecase"
)

// State names one top-level screen.
type State string

const (
	StateLoading        State = "loading"
	StateLanding        State = "landing"
	StateLogin          State = "login"
	StateRegisterUser   State = "register-user"
	StateRegisterMitra  State = "register-mitra"
	StateAdminDashboard State = "dashboard-admin"
	StateUserDashboard  State = "dashboard-user"
	StateMitraDashboard State = "dashboard-mitra"
)

// transitions lists the navigation edges a client may take itself.
// Entering a dashboard happens only through a resolved login, and
// leaving one only through logout.
var transitions = map[State][]State{
	StateLanding:       {StateLogin, StateRegisterUser, StateRegisterMitra},
	StateLogin:         {StateLanding, StateRegisterUser, StateRegisterMitra},
	StateRegisterUser:  {StateLanding, StateLogin, StateRegisterMitra},
	StateRegisterMitra: {StateLanding, StateLogin, StateRegisterUser},
}

// Router is the view state machine. It starts in the loading state
// until the first Resolve settles the session.
type Router struct {
	mu     sync.Mutex
	state  State
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// RouterParams holds dependencies for the Router, injected by Fx.
type RouterParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Logger *slog.Logger
}

// NewRouter is the constructor for Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		state:  StateLoading,
		auth:   params.Auth,
		logger: params.Logger,
	}
}

// Current returns the state the shell should render.
func (r *Router) Current() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Resolve settles the session into a concrete screen: the role's
// dashboard when somebody is logged in, the landing page otherwise.
// A session resolution failure also lands, so the shell never sticks
// on the loading screen.
func (r *Router) Resolve(ctx context.Context) State {
	current, err := r.auth.CurrentUser(ctx)
	if err != nil {
		r.logger.Warn("session resolution failed, showing landing page",
			slog.Any("error", err))

		return r.set(StateLanding)
	}

	if current == nil {
		return r.set(StateLanding)
	}

	return r.set(dashboardFor(current.Role))
}

// Navigate moves between the logged-out screens. A move the current
// state does not allow leaves the state unchanged.
func (r *Router) Navigate(target State) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, allowed := range transitions[r.state] {
		if allowed == target {
			r.state = target

			break
		}
	}

	return r.state
}

// LoggedIn enters the dashboard for the authenticated role.
func (r *Router) LoggedIn(role entity.Role) State {
	return r.set(dashboardFor(role))
}

// LoggedOut returns the shell to the landing page from any state.
func (r *Router) LoggedOut() State {
	return r.set(StateLanding)
}

func (r *Router) set(state State) State {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = state

	return r.state
}

// dashboardFor maps a role to its dashboard. An unrecognized role
// falls back to the landing page instead of a broken screen.
func dashboardFor(role entity.Role) State {
	switch role {
	case entity.RoleAdmin:
		return StateAdminDashboard
	case entity.RoleUser:
		return StateUserDashboard
	case entity.RoleMitra:
		return StateMitraDashboard
	default:
		return StateLanding
	}
}
