package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pwnz15/backend-sld/config"
	"github.com/pwnz15/backend-sld/database"
	articleRepoPkg "github.com/pwnz15/backend-sld/database/repository/article"
	clientRepoPkg "github.com/pwnz15/backend-sld/database/repository/client"
	driverRepoPkg "github.com/pwnz15/backend-sld/database/repository/driver"
	invoiceRepoPkg "github.com/pwnz15/backend-sld/database/repository/invoice"
	userRepoPkg "github.com/pwnz15/backend-sld/database/repository/user"
	"github.com/pwnz15/backend-sld/handlers"
	"github.com/pwnz15/backend-sld/middleware"
	"github.com/pwnz15/backend-sld/routes"
	"github.com/pwnz15/backend-sld/services/article"
	"github.com/pwnz15/backend-sld/services/auth"
	"github.com/pwnz15/backend-sld/services/client"
	"github.com/pwnz15/backend-sld/services/driver"
	"github.com/pwnz15/backend-sld/services/exchange"
	"github.com/pwnz15/backend-sld/services/invoice"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	db := database.GetDatabase()

	// repositories.
	articleRepo := articleRepoPkg.NewMongoArticleRepo(db)
	clientRepo := clientRepoPkg.NewMongoClientRepo(db)
	driverRepo := driverRepoPkg.NewMongoDriverRepo(db)
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	// services.
	authService := &auth.DefaultAuthService{Repo: userRepo}
	articleService := &article.DefaultArticleService{
		Repo:  articleRepo,
		Cache: utils.GetCacheClient(),
	}
	clientService := &client.DefaultClientService{Repo: clientRepo}
	driverService := &driver.DefaultDriverService{Repo: driverRepo}
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:    invoiceRepo,
		Clients: clientRepo,
		Drivers: driverRepo,
	}
	exchangeService := &exchange.DefaultExchangeService{
		Articles:  articleRepo,
		Clients:   clientRepo,
		BatchSize: config.AppConfig.ImportBatchSize,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterHandler:       handlers.RegisterHandler(authService),
		LoginHandler:          handlers.LoginHandler(authService),
		GetCurrentUserHandler: handlers.GetCurrentUserHandler(authService),
		GetAllUsersHandler:    handlers.GetAllUsersHandler(authService),

		CreateArticleHandler: handlers.CreateArticleHandler(articleService),
		GetArticleHandler:    handlers.GetArticleHandler(articleService),
		ListArticlesHandler:  handlers.ListArticlesHandler(articleService),
		UpdateArticleHandler: handlers.UpdateArticleHandler(articleService),
		DeleteArticleHandler: handlers.DeleteArticleHandler(articleService),

		CreateClientHandler: handlers.CreateClientHandler(clientService),
		GetClientHandler:    handlers.GetClientHandler(clientService),
		ListClientsHandler:  handlers.ListClientsHandler(clientService),
		UpdateClientHandler: handlers.UpdateClientHandler(clientService),
		DeleteClientHandler: handlers.DeleteClientHandler(clientService),

		CreateDriverHandler: handlers.CreateDriverHandler(driverService),
		GetDriverHandler:    handlers.GetDriverHandler(driverService),
		ListDriversHandler:  handlers.ListDriversHandler(driverService),
		UpdateDriverHandler: handlers.UpdateDriverHandler(driverService),
		DeleteDriverHandler: handlers.DeleteDriverHandler(driverService),

		CreateInvoiceHandler:  handlers.CreateInvoiceHandler(invoiceService),
		GetInvoiceHandler:     handlers.GetInvoiceHandler(invoiceService),
		SearchInvoicesHandler: handlers.SearchInvoicesHandler(invoiceService),
		UpdateInvoiceHandler:  handlers.UpdateInvoiceHandler(invoiceService),
		DeleteInvoiceHandler:  handlers.DeleteInvoiceHandler(invoiceService),

		ImportArticlesHandler: handlers.ImportArticlesHandler(exchangeService),
		ImportClientsHandler:  handlers.ImportClientsHandler(exchangeService),
		ExportArticlesHandler: handlers.ExportArticlesHandler(exchangeService),
		ExportClientsHandler:  handlers.ExportClientsHandler(exchangeService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Server starting on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for an interrupt signal, then shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("Failed to disconnect MongoDB: %v", err)
	}
	logger.Info("Server exited")
}
