package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupCategoryRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
		books.GET("/:id/availability", c.BookHandler.GetAvailability)
		books.PUT("/:id/inventory", c.BookHandler.UpdateInventory)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.CreateAuthor)
		authors.GET("", c.AuthorHandler.ListAuthors)
		authors.GET("/search", c.AuthorHandler.SearchAuthors)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)
		authors.PUT("/:id", c.AuthorHandler.UpdateAuthor)
		authors.DELETE("/:id", c.AuthorHandler.DeleteAuthor)
		authors.GET("/:id/books", c.BookHandler.ListByAuthor)
		authors.PUT("/:id/book-count", c.AuthorHandler.RefreshBookCount)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.POST("", c.CategoryHandler.CreateCategory)
		categories.GET("", c.CategoryHandler.ListCategories)
		categories.GET("/tree", c.CategoryHandler.GetTree)
		categories.GET("/search", c.CategoryHandler.SearchCategories)
		categories.GET("/:id", c.CategoryHandler.GetCategory)
		categories.PUT("/:id", c.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", c.CategoryHandler.DeleteCategory)
		categories.GET("/:id/books", c.BookHandler.ListByCategory)
		categories.GET("/:id/subcategories", c.CategoryHandler.GetSubcategories)
		categories.PUT("/:id/book-count", c.CategoryHandler.RefreshBookCount)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database connection failed")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"environment": c.Config.App.Environment,
		})
	}
}
