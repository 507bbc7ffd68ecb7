// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tally/config"
	"tally/internal/delivery/http/middleware"
	"tally/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	LoyaltyHandler *handler.LoyaltyHandler
	RewardHandler  *handler.RewardHandler
	ProgramHandler *handler.ProgramHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	loyaltyHandler *handler.LoyaltyHandler
	rewardHandler  *handler.RewardHandler
	programHandler *handler.ProgramHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		loyaltyHandler: params.LoyaltyHandler,
		rewardHandler:  params.RewardHandler,
		programHandler: params.ProgramHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Member-facing loyalty routes. No session: possession of the earn token
	// proves the scan, the wallet pass ID identifies the member.
	loyaltyGroup := e.Group("/loyalty")
	{
		loyaltyGroup.POST("/scan", r.loyaltyHandler.Scan)
		loyaltyGroup.POST("/:publicId/join", r.loyaltyHandler.Join)
		loyaltyGroup.POST("/:publicId/earn", r.loyaltyHandler.Earn)
		loyaltyGroup.GET("/:publicId/membership", r.loyaltyHandler.GetMembershipStatus)
		loyaltyGroup.POST("/:publicId/wallet-pass/retry", r.loyaltyHandler.RetryWalletPass)
	}

	// Counter redemption routes, keyed by the membership ID on the pass.
	membershipGroup := e.Group("/memberships")
	{
		membershipGroup.GET("/:membershipId/reward", r.rewardHandler.GetAvailableReward)
		membershipGroup.POST("/:membershipId/reward/redeem", r.rewardHandler.Redeem)
		membershipGroup.GET("/:membershipId/redemptions", r.rewardHandler.GetRedemptionHistory)
	}

	// Owner back-office routes require authentication and the "owner" role.
	ownerGroup := e.Group("/programs")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(middleware.RoleOwner))
	{
		ownerGroup.POST("", r.programHandler.CreateProgram)
		ownerGroup.GET("", r.programHandler.ListPrograms)
		ownerGroup.GET("/:publicId", r.programHandler.GetProgram)
		ownerGroup.PATCH("/:publicId", r.programHandler.UpdateProgram)
		ownerGroup.POST("/:publicId/token/rotate", r.programHandler.RotateEarnToken)
		ownerGroup.GET("/:publicId/qr", r.programHandler.RenderProgramQR)
	}

	// Lifecycle transitions are an admin operation.
	adminGroup := e.Group("/admin/programs")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(middleware.RoleAdmin))
	{
		adminGroup.PATCH("/:publicId/status", r.programHandler.UpdateStatus)
	}

	// Test routes for middleware validation, enabled per environment.
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
