package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

// SetupRouter serves collection roots with and without the trailing slash
// instead of redirecting.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Hello World")
	})
	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)
	setupUserRoutes(router, c)

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(r *gin.Engine, c *container.Container) {
	authors := r.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", c.AuthorHandler.Create)
		authors.POST("/", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r *gin.Engine, c *container.Container) {
	books := r.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", c.BookHandler.Create)
		books.POST("/", c.BookHandler.Create)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// USER ROUTES (read-only)
// ========================================
func setupUserRoutes(r *gin.Engine, c *container.Container) {
	users := r.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		if err := c.DB.Ping(pingCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"details": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"driver": c.DB.Driver(),
		})
	}
}
