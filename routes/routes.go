package routes

import (
	"net/http"
	"time"

	"github.com/pwnz15/backend-sld/handlers"
	"github.com/pwnz15/backend-sld/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.POST("/register", middleware.RequirePermission("manage:users"), hb.RegisterHandler)
		api.GET("/me", hb.GetCurrentUserHandler)
		api.GET("/users", middleware.RequirePermission("manage:users"), hb.GetAllUsersHandler)
	}
}

// RegisterArticleRoutes registers catalog endpoints.
func RegisterArticleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/articles")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", middleware.RequirePermission("view:inventory"), hb.ListArticlesHandler)
		api.GET("/:id", middleware.RequirePermission("view:inventory"), hb.GetArticleHandler)
		api.POST("", middleware.RequirePermission("manage:inventory"), hb.CreateArticleHandler)
		api.PUT("/:id", middleware.RequirePermission("manage:inventory"), hb.UpdateArticleHandler)
		api.DELETE("/:id", middleware.RequirePermission("manage:inventory"), hb.DeleteArticleHandler)
	}
}

// RegisterClientRoutes registers client endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", middleware.RequirePermission("view:clients"), hb.ListClientsHandler)
		api.GET("/:id", middleware.RequirePermission("view:clients"), hb.GetClientHandler)
		api.POST("", middleware.RequirePermission("manage:clients"), hb.CreateClientHandler)
		api.PUT("/:id", middleware.RequirePermission("manage:clients"), hb.UpdateClientHandler)
		api.DELETE("/:id", middleware.RequirePermission("manage:clients"), hb.DeleteClientHandler)
	}
}

// RegisterDriverRoutes registers driver endpoints.
func RegisterDriverRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drivers")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", middleware.RequirePermission("view:drivers"), hb.ListDriversHandler)
		api.GET("/:id", middleware.RequirePermission("view:drivers"), hb.GetDriverHandler)
		api.POST("", middleware.RequirePermission("manage:drivers"), hb.CreateDriverHandler)
		api.PUT("/:id", middleware.RequirePermission("manage:drivers"), hb.UpdateDriverHandler)
		api.DELETE("/:id", middleware.RequirePermission("manage:drivers"), hb.DeleteDriverHandler)
	}
}

// RegisterInvoiceRoutes registers billing endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.AuthMiddleware(), middleware.RequirePermission("manage:sales"))
		api.GET("", hb.SearchInvoicesHandler)
		api.GET("/:id", hb.GetInvoiceHandler)
		api.POST("", hb.CreateInvoiceHandler)
		api.PUT("/:id", hb.UpdateInvoiceHandler)
		api.DELETE("/:id", hb.DeleteInvoiceHandler)
	}
}

// RegisterExchangeRoutes registers bulk CSV import/export endpoints.
func RegisterExchangeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/import-export")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/articles/import", middleware.RequirePermission("manage:inventory"), hb.ImportArticlesHandler)
		api.GET("/articles/export", middleware.RequirePermission("view:inventory"), hb.ExportArticlesHandler)
		api.POST("/clients/import", middleware.RequirePermission("manage:clients"), hb.ImportClientsHandler)
		api.GET("/clients/export", middleware.RequirePermission("view:clients"), hb.ExportClientsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterArticleRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterDriverRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterExchangeRoutes(r, hb)
	RegisterHealthRoute(r)
}
