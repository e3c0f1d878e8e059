// Package server wires handlers, middleware and routes into the gin engine.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/di"
	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/middleware"
)

// NewRouter builds the gin engine with all routes registered.
//
// The route tree has three trust levels: public (no session), admin
// (session bound to a salon) and platform (super_admin only). Tenant scope
// is enforced by the middleware chain before any handler runs.
func NewRouter(c *di.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	session := &middleware.SessionConfig{
		Validator:  c.AuthService,
		CookieName: c.Config.Session.CookieName,
	}

	v1 := router.Group("/api/v1")
	{
		// Unauthenticated surface. Signup and login still leave an audit
		// trail even though no principal is bound yet.
		v1.POST("/signup", middleware.Audit(c.AuditLogger), c.SalonHandler.Signup)
		v1.POST("/auth/login", middleware.Audit(c.AuditLogger), c.AuthHandler.Login)

		public := v1.Group("/public")
		{
			public.GET("/salons/:slug", c.PublicHandler.GetSite)
			public.POST("/salons/:slug/waitlist", c.PublicHandler.JoinWaitlist)
		}

		// Session-bound surface
		auth := v1.Group("/auth", middleware.SessionRequired(session))
		{
			auth.POST("/logout", c.AuthHandler.Logout)
			auth.GET("/me", c.AuthHandler.Me)
			auth.POST("/refresh", c.AuthHandler.Refresh)
		}

		// Salon admin surface: every route below acts within the caller's
		// own salon, so a tenant-bound principal is mandatory.
		admin := v1.Group("",
			middleware.SessionRequired(session),
			middleware.RequireRole(domain.RoleTenantAdmin),
			middleware.RequireTenant(),
			middleware.Audit(c.AuditLogger),
		)
		{
			admin.GET("/salon", c.SalonHandler.Get)
			admin.PUT("/salon", c.SalonHandler.Update)

			admin.POST("/services", c.CatalogHandler.CreateService)
			admin.GET("/services", c.CatalogHandler.ListServices)
			admin.GET("/services/:id", c.CatalogHandler.GetService)
			admin.PUT("/services/:id", c.CatalogHandler.UpdateService)
			admin.DELETE("/services/:id", c.CatalogHandler.DeleteService)

			admin.POST("/specialists", c.CatalogHandler.CreateSpecialist)
			admin.GET("/specialists", c.CatalogHandler.ListSpecialists)
			admin.GET("/specialists/:id", c.CatalogHandler.GetSpecialist)
			admin.PUT("/specialists/:id", c.CatalogHandler.UpdateSpecialist)
			admin.DELETE("/specialists/:id", c.CatalogHandler.DeleteSpecialist)

			admin.GET("/hero", c.CatalogHandler.GetHero)
			admin.PUT("/hero", c.CatalogHandler.UpsertHero)

			admin.GET("/waitlist", c.WaitlistHandler.List)
			admin.GET("/waitlist/stats", c.WaitlistHandler.Stats)
			admin.PUT("/waitlist/status", c.WaitlistHandler.BulkUpdateStatus)
			admin.GET("/waitlist/:id", c.WaitlistHandler.Get)
			admin.PUT("/waitlist/:id/status", c.WaitlistHandler.UpdateStatus)
			admin.PUT("/waitlist/:id/notes", c.WaitlistHandler.UpdateNotes)

			admin.POST("/consent-templates", c.ConsentHandler.Create)
			admin.GET("/consent-templates", c.ConsentHandler.List)
			admin.GET("/consent-templates/:id", c.ConsentHandler.Get)
			admin.PUT("/consent-templates/:id", c.ConsentHandler.Update)
			admin.DELETE("/consent-templates/:id", c.ConsentHandler.Delete)
			admin.POST("/consent-templates/:id/publish", c.ConsentHandler.Publish)
			admin.POST("/consent-templates/:id/archive", c.ConsentHandler.Archive)
			admin.POST("/consent-templates/:id/versions", c.ConsentHandler.NewVersion)
		}

		// Platform surface
		platform := v1.Group("/platform",
			middleware.SessionRequired(session),
			middleware.RequireRole(domain.RoleSuperAdmin),
			middleware.Audit(c.AuditLogger),
		)
		{
			platform.GET("/salons", c.SalonHandler.List)
			platform.DELETE("/salons/:id", c.SalonHandler.Deactivate)
		}
	}

	return router
}
