// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"registry/internal/delivery/http/middleware"
	"registry/internal/delivery/http/router/handler"
	"registry/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	SubscriptionHandler *handler.SubscriptionHandler
	MembershipHandler   *handler.MembershipHandler
	VerificationHandler *handler.VerificationHandler
	LocationHandler     *handler.LocationHandler
	AdminHandler        *handler.AdminHandler
	WebhookHandler      *handler.WebhookHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	profileHandler      *handler.ProfileHandler
	subscriptionHandler *handler.SubscriptionHandler
	membershipHandler   *handler.MembershipHandler
	verificationHandler *handler.VerificationHandler
	locationHandler     *handler.LocationHandler
	adminHandler        *handler.AdminHandler
	webhookHandler      *handler.WebhookHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		profileHandler:      params.ProfileHandler,
		subscriptionHandler: params.SubscriptionHandler,
		membershipHandler:   params.MembershipHandler,
		verificationHandler: params.VerificationHandler,
		locationHandler:     params.LocationHandler,
		adminHandler:        params.AdminHandler,
		webhookHandler:      params.WebhookHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/google", r.userHandler.GoogleLogin)
	}

	// Member routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.POST("/avatar", r.profileHandler.UploadAvatar)
	}

	subscriptionGroup := e.Group("/subscription")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.GET("", r.subscriptionHandler.GetStatus)
		subscriptionGroup.POST("/checkout", r.subscriptionHandler.StartCheckout)
		subscriptionGroup.POST("/portal", r.subscriptionHandler.OpenPortal)
	}

	cardGroup := e.Group("/card")
	cardGroup.Use(r.authMiddleware.Authenticate)
	{
		cardGroup.GET("", r.membershipHandler.GetCard)
		cardGroup.GET("/qr", r.membershipHandler.GetCardQR)
	}

	// Public verification endpoint, hit by anyone scanning a card's QR code
	e.GET("/verify/:memberId", r.verificationHandler.VerifyMember)

	// Public location list
	e.GET("/locations", r.locationHandler.ListLocations)

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                          // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin))) // Then, check for the role
	{
		adminGroup.GET("/stats", r.adminHandler.GetStats)
	}

	// Payment provider webhooks, authenticated by signature instead of JWT
	e.POST("/webhooks/stripe", r.webhookHandler.HandleStripeWebhook)
}
