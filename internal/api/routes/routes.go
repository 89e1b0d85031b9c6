package routes

import (
	"net/http"

	"jobquest-web/internal/api/handlers"
	"jobquest-web/internal/api/middleware"
	"jobquest-web/internal/apply"
	"jobquest-web/internal/backend"
	"jobquest-web/internal/config"
	"jobquest-web/internal/savedjobs"
	"jobquest-web/internal/session"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, client *backend.Client, store *session.Store, saved *savedjobs.Manager, flows *apply.Registry) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))
	e.Use(middleware.SessionMiddleware(store, cfg))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(store, client))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Job board
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobsHandler(cfg, client, saved))
			jobs.GET("/saved", handlers.SavedJobsHandler(cfg, client, saved), middleware.RequireUser())
			jobs.GET("/:id", handlers.GetJobHandler(cfg, client, saved))
			jobs.POST("/:id/bookmark", handlers.ToggleBookmarkHandler(saved))
		}

		// Application flows
		applications := v1.Group("/apply")
		{
			applications.POST("", handlers.StartApplicationHandler(client, flows))
			applications.GET("/:id", handlers.ApplicationStateHandler(flows))
			applications.POST("/:id/guest", handlers.SubmitGuestApplicationHandler(flows))
			applications.POST("/:id/provider", handlers.ChooseProviderHandler(flows))
			applications.GET("/:id/email", handlers.CopyEmailHandler(flows))
			applications.DELETE("/:id", handlers.CloseApplicationHandler(flows))
		}

		// Auth and session
		auth := v1.Group("/auth")
		{
			auth.POST("/login", handlers.LoginHandler(client, store, saved))
			auth.POST("/signup", handlers.SignupHandler(client, store))
			auth.POST("/logout", handlers.LogoutHandler(store, saved))
			auth.GET("/me", handlers.MeHandler())
		}

		// Profile and application history
		me := v1.Group("/me", middleware.RequireUser())
		{
			me.GET("/profile", handlers.GetProfileHandler(client, store))
			me.PUT("/profile", handlers.UpdateProfileHandler(client, store))
			me.POST("/resume", handlers.UploadResumeHandler(client, store))
			me.GET("/applications", handlers.MyApplicationsHandler(client))
		}

		// Public forms
		v1.POST("/newsletter/subscribe", handlers.NewsletterSubscribeHandler(client))
		v1.POST("/newsletter/unsubscribe", handlers.NewsletterUnsubscribeHandler(client))
		v1.POST("/contact", handlers.ContactHandler(client))

		// Admin surface
		admin := v1.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/stats", handlers.AdminDashboardHandler(client))

			adminJobs := admin.Group("/jobs")
			{
				adminJobs.POST("", handlers.AdminCreateJobHandler(client))
				adminJobs.PUT("/:id", handlers.AdminUpdateJobHandler(client))
				adminJobs.DELETE("/:id", handlers.AdminDeleteJobHandler(client))
				adminJobs.POST("/:id/poster", handlers.AdminUploadPosterHandler(client))
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", handlers.AdminListUsersHandler(client))
				adminUsers.PATCH("/:id/role", handlers.AdminChangeRoleHandler(client))
				adminUsers.PATCH("/:id/status", handlers.AdminChangeUserStatusHandler(client))
				adminUsers.DELETE("/:id", handlers.AdminDeleteUserHandler(client))
			}

			adminApps := admin.Group("/guest-applications")
			{
				adminApps.GET("", handlers.AdminListGuestApplicationsHandler(client))
				adminApps.PATCH("/:id/status", handlers.AdminGuestApplicationStatusHandler(client))
			}

			admin.GET("/newsletter", handlers.AdminNewsletterHandler(client))
			admin.GET("/contact", handlers.AdminContactMessagesHandler(client))
			admin.PATCH("/contact/:id/read", handlers.AdminMarkContactReadHandler(client))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "JobQuest Web Gateway",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
