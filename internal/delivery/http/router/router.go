// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"getlife/internal/delivery/http/middleware"
	"getlife/internal/delivery/http/router/handler"
	"getlife/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	ShellHandler   *handler.ShellHandler
	AuthHandler    *handler.AuthHandler
	PartnerHandler *handler.PartnerHandler
	ProfileHandler *handler.ProfileHandler
	WalletHandler  *handler.WalletHandler
	OrderHandler   *handler.OrderHandler
	ChatHandler    *handler.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	adminOnly := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)

	// Shell endpoints
	e.GET("/health", r.params.ShellHandler.Health)
	e.GET("/view/state", r.params.ShellHandler.ViewState)
	e.POST("/view/navigate", r.params.ShellHandler.Navigate)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/me", r.params.AuthHandler.Me)
	}

	// Anyone may apply to become a mitra; everything else in the
	// partner workflow is admin-reviewed.
	partnerGroup := e.Group("/partner")
	partnerGroup.POST("/applications", r.params.PartnerHandler.Apply)
	{
		adminGroup := partnerGroup.Group("", authenticate, adminOnly)
		adminGroup.GET("/applications", r.params.PartnerHandler.ListApplications)
		adminGroup.POST("/applications/:id/review", r.params.PartnerHandler.Review)
		adminGroup.GET("/blocked", r.params.PartnerHandler.ListBlocked)
		adminGroup.POST("/blocked", r.params.PartnerHandler.Block)
		adminGroup.DELETE("/blocked/:email", r.params.PartnerHandler.Unblock)
	}

	// Profile directory for the admin dashboard
	e.GET("/profiles", r.params.ProfileHandler.List, authenticate, adminOnly)

	// Wallet routes
	walletGroup := e.Group("/wallet")
	walletGroup.Use(authenticate)
	{
		walletGroup.POST("/topup", r.params.WalletHandler.Topup)
		walletGroup.POST("/payment", r.params.WalletHandler.Payment)
		walletGroup.GET("/transactions", r.params.WalletHandler.ListTransactions)
		walletGroup.POST("/transactions/:id/review", r.params.WalletHandler.Review, adminOnly)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Place)
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.POST("/:id/start", r.params.OrderHandler.Start)
		orderGroup.POST("/:id/complete", r.params.OrderHandler.Complete)
		orderGroup.POST("/:id/cancel", r.params.OrderHandler.Cancel)
	}

	// Chat routes
	chatGroup := e.Group("/chat")
	chatGroup.Use(authenticate)
	{
		chatGroup.POST("/messages", r.params.ChatHandler.Send)
		chatGroup.GET("/messages", r.params.ChatHandler.List)
	}
}
