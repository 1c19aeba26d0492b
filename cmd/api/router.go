package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub-backend/internal/shared/auth"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/pkg/container"
)

// setupRouter registers middleware and all API routes.
//
// Read endpoints are open to anonymous callers; OptionalAuth still
// attaches an identity when a valid token is present. Mutations are
// gated by RequireAuth plus the capability check for the caller's role.
func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	router.GET("/health", healthHandler(c))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuth(c.JWTManager))

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.UserHandler.Register)
		authGroup.POST("/login", c.UserHandler.Login)
		authGroup.POST("/refresh", c.UserHandler.Refresh)
	}

	requireAuth := middleware.RequireAuth(c.JWTManager)

	users := v1.Group("/users")
	{
		users.GET("/me", requireAuth, c.UserHandler.Me)
		users.PUT("/me/profile", requireAuth, c.UserHandler.UpdateProfile)

		users.POST("/:id/follow", requireAuth, c.FollowHandler.Follow)
		users.POST("/:id/unfollow", requireAuth, c.FollowHandler.Unfollow)
		users.GET("/:id/followers", c.FollowHandler.Followers)
		users.GET("/:id/following", c.FollowHandler.Following)
	}

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/stats", c.BookHandler.Stats)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", requireAuth, middleware.RequireCapability(auth.CapabilityCreate), c.BookHandler.Create)
		books.PUT("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.BookHandler.Update)
		books.PATCH("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.BookHandler.Update)
		books.DELETE("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityDelete), c.BookHandler.Delete)
	}

	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", requireAuth, middleware.RequireCapability(auth.CapabilityCreate), c.AuthorHandler.Create)
		authors.PUT("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.AuthorHandler.Update)
		authors.PATCH("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.AuthorHandler.Update)
		authors.DELETE("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityDelete), c.AuthorHandler.Delete)
	}

	libraries := v1.Group("/libraries")
	{
		libraries.GET("", c.LibraryHandler.List)
		libraries.GET("/:id", c.LibraryHandler.GetByID)
		libraries.POST("", requireAuth, middleware.RequireCapability(auth.CapabilityCreate), c.LibraryHandler.Create)
		libraries.PUT("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.LibraryHandler.Update)
		libraries.PATCH("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.LibraryHandler.Update)
		libraries.DELETE("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityDelete), c.LibraryHandler.Delete)

		libraries.POST("/:id/books", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.LibraryHandler.AddBook)
		libraries.DELETE("/:id/books/:bookId", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), c.LibraryHandler.RemoveBook)
	}

	// Posts are personal content: any authenticated user can publish,
	// and ownership is enforced in the service instead of the role gate.
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.POST("", requireAuth, c.PostHandler.Create)
		posts.PUT("/:id", requireAuth, c.PostHandler.Update)
		posts.PATCH("/:id", requireAuth, c.PostHandler.Update)
		posts.DELETE("/:id", requireAuth, c.PostHandler.Delete)

		posts.POST("/:id/like", requireAuth, c.PostHandler.Like)
		posts.POST("/:id/unlike", requireAuth, c.PostHandler.Unlike)
	}

	notifications := v1.Group("/notifications")
	{
		notifications.GET("", requireAuth, c.NotificationHandler.List)
		notifications.POST("/:id/read", requireAuth, c.NotificationHandler.MarkRead)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
