package routes

import (
	"parkwise/internal/handlers"
	"parkwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth            *handlers.AuthHandler
	Location        *handlers.LocationHandler
	Site            *handlers.SiteHandler
	Device          *handlers.DeviceHandler
	VehicleCategory *handlers.VehicleCategoryHandler
	Tariff          *handlers.TariffHandler
	OvernightPolicy *handlers.OvernightPolicyHandler
	Session         *handlers.SessionHandler
	Transaction     *handlers.TransactionHandler
	Report          *handlers.ReportHandler
}

// SetupRoutes mounts the full API surface. Device-facing endpoints (config
// pull, transaction ingest, vehicle entry/exit) are unauthenticated: gate
// firmware identifies itself by device code, not tokens. Everything else
// requires a bearer token; catalog mutations require the admin role.
func SetupRoutes(r *gin.RouterGroup, h *Handlers, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// Device-facing endpoints
	r.GET("/devices/config/:code", h.Device.GetConfig)
	r.POST("/transactions", h.Transaction.Ingest)
	r.POST("/vehicles/entry", h.Session.VehicleEntry)
	r.POST("/vehicles/exit", h.Session.VehicleExit)

	authed := r.Group("")
	authed.Use(middleware.AuthRequired(jwtSecret))
	{
		authed.POST("/auth/register", middleware.AdminRequired(), h.Auth.Register)

		authed.GET("/sessions", h.Session.List)
		authed.GET("/sessions/active", h.Session.ListActive)
		authed.GET("/sessions/:transaction_id", h.Session.Get)

		authed.GET("/transactions", h.Transaction.List)
		authed.GET("/transactions/:transaction_id", h.Transaction.Get)

		authed.GET("/locations", h.Location.List)
		authed.GET("/locations/:id", h.Location.Get)
		authed.GET("/locations/:id/sites", h.Site.GetByLocation)
		authed.GET("/sites", h.Site.List)
		authed.GET("/sites/:id", h.Site.Get)
		authed.GET("/devices", h.Device.List)
		authed.GET("/devices/:id", h.Device.Get)
		authed.GET("/vehicle-categories", h.VehicleCategory.List)
		authed.GET("/vehicle-categories/:id", h.VehicleCategory.Get)
		authed.GET("/tariffs", h.Tariff.List)
		authed.GET("/tariffs/:id", h.Tariff.Get)
		authed.GET("/overnight-policies", h.OvernightPolicy.List)
		authed.GET("/overnight-policies/:id", h.OvernightPolicy.Get)

		reports := authed.Group("/reports")
		{
			reports.GET("/dashboard", h.Report.Dashboard)
			reports.GET("/revenue", h.Report.Revenue)
			reports.GET("/occupancy", h.Report.Occupancy)
		}
	}

	admin := r.Group("")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("/locations", h.Location.Create)
		admin.PUT("/locations/:id", h.Location.Update)
		admin.DELETE("/locations/:id", h.Location.Delete)

		admin.POST("/sites", h.Site.Create)
		admin.PUT("/sites/:id", h.Site.Update)
		admin.DELETE("/sites/:id", h.Site.Delete)

		admin.POST("/devices", h.Device.Create)
		admin.PUT("/devices/:id", h.Device.Update)
		admin.DELETE("/devices/:id", h.Device.Delete)

		admin.POST("/vehicle-categories", h.VehicleCategory.Create)
		admin.PUT("/vehicle-categories/:id", h.VehicleCategory.Update)
		admin.DELETE("/vehicle-categories/:id", h.VehicleCategory.Delete)

		admin.POST("/tariffs", h.Tariff.Create)
		admin.PUT("/tariffs/:id", h.Tariff.Update)
		admin.DELETE("/tariffs/:id", h.Tariff.Delete)

		admin.POST("/overnight-policies", h.OvernightPolicy.Create)
		admin.PUT("/overnight-policies/:id", h.OvernightPolicy.Update)
		admin.DELETE("/overnight-policies/:id", h.OvernightPolicy.Delete)
	}
}
