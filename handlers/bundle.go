package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	GetCurrentUserHandler gin.HandlerFunc
	GetAllUsersHandler    gin.HandlerFunc

	// Article endpoints
	CreateArticleHandler gin.HandlerFunc
	GetArticleHandler    gin.HandlerFunc
	ListArticlesHandler  gin.HandlerFunc
	UpdateArticleHandler gin.HandlerFunc
	DeleteArticleHandler gin.HandlerFunc

	// Client endpoints
	CreateClientHandler gin.HandlerFunc
	GetClientHandler    gin.HandlerFunc
	ListClientsHandler  gin.HandlerFunc
	UpdateClientHandler gin.HandlerFunc
	DeleteClientHandler gin.HandlerFunc

	// Driver endpoints
	CreateDriverHandler gin.HandlerFunc
	GetDriverHandler    gin.HandlerFunc
	ListDriversHandler  gin.HandlerFunc
	UpdateDriverHandler gin.HandlerFunc
	DeleteDriverHandler gin.HandlerFunc

	// Invoice endpoints
	CreateInvoiceHandler  gin.HandlerFunc
	GetInvoiceHandler     gin.HandlerFunc
	SearchInvoicesHandler gin.HandlerFunc
	UpdateInvoiceHandler  gin.HandlerFunc
	DeleteInvoiceHandler  gin.HandlerFunc

	// Import/export endpoints
	ImportArticlesHandler gin.HandlerFunc
	ImportClientsHandler  gin.HandlerFunc
	ExportArticlesHandler gin.HandlerFunc
	ExportClientsHandler  gin.HandlerFunc
}
