// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bloodbridge/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler   *handler.RequestHandler
	DonationHandler  *handler.DonationHandler
	DonorHandler     *handler.DonorHandler
	StockHandler     *handler.StockHandler
	DashboardHandler *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler   *handler.RequestHandler
	donationHandler  *handler.DonationHandler
	donorHandler     *handler.DonorHandler
	stockHandler     *handler.StockHandler
	dashboardHandler *handler.DashboardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler:   params.RequestHandler,
		donationHandler:  params.DonationHandler,
		donorHandler:     params.DonorHandler,
		stockHandler:     params.StockHandler,
		dashboardHandler: params.DashboardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	requestGroup := e.Group("/requests")
	{
		requestGroup.POST("", r.requestHandler.Submit)
		requestGroup.GET("/pending", r.requestHandler.Pending)
		requestGroup.GET("/history", r.requestHandler.History)
		requestGroup.GET("/:id", r.requestHandler.Get)
		requestGroup.POST("/:id/approve", r.requestHandler.Approve)
		requestGroup.POST("/:id/reject", r.requestHandler.Reject)
	}

	donationGroup := e.Group("/donations")
	{
		donationGroup.POST("", r.donationHandler.Submit)
		donationGroup.GET("/pending", r.donationHandler.Pending)
		donationGroup.GET("/:id", r.donationHandler.Get)
		donationGroup.POST("/:id/approve", r.donationHandler.Approve)
		donationGroup.POST("/:id/reject", r.donationHandler.Reject)
	}

	donorGroup := e.Group("/donors")
	{
		donorGroup.POST("", r.donorHandler.Register)
		donorGroup.GET("/:id", r.donorHandler.Get)
		donorGroup.PATCH("/:id/availability", r.donorHandler.MarkAvailability)
		donorGroup.PUT("/:id/location", r.donorHandler.UpdateLocation)
		donorGroup.GET("/:donorId/donations", r.donationHandler.ByDonor)
	}

	e.GET("/dashboard", r.dashboardHandler.Overview)

	stockGroup := e.Group("/stock")
	{
		stockGroup.GET("", r.stockHandler.Snapshot)
		stockGroup.GET("/:group", r.stockHandler.Balance)
		stockGroup.POST("/adjust", r.stockHandler.Adjust)
	}
}
