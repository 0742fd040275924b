package handlers

import (
	"io"
	"net/http"

	"github.com/pwnz15/backend-sld/services/exchange"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

// csvUpload opens the uploaded CSV: a multipart "file" part if present,
// otherwise the raw request body.
func csvUpload(c *gin.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err == nil {
		return file.Open()
	}
	return c.Request.Body, nil
}

// ImportArticlesHandler ingests an article CSV and reports batch counts.
func ImportArticlesHandler(svc exchange.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reader, err := csvUpload(c)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid upload", err.Error())
			return
		}
		defer reader.Close()

		result, err := svc.ImportArticles(c.Request.Context(), reader)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ImportClientsHandler ingests a client CSV and reports batch counts.
func ImportClientsHandler(svc exchange.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reader, err := csvUpload(c)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid upload", err.Error())
			return
		}
		defer reader.Close()

		result, err := svc.ImportClients(c.Request.Context(), reader)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ExportArticlesHandler streams the article catalog as a CSV attachment.
func ExportArticlesHandler(svc exchange.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		csvText, err := svc.ExportArticles(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="articles.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
	}
}

// ExportClientsHandler streams the client base as a CSV attachment.
func ExportClientsHandler(svc exchange.ExchangeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		csvText, err := svc.ExportClients(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="clients.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
	}
}
