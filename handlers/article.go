package handlers

import (
	"net/http"
	"strconv"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/services/article"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

// pageParams extracts pagination query parameters with sane defaults.
func pageParams(c *gin.Context) (page, limit int64) {
	page, _ = strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	return page, limit
}

// CreateArticleHandler inserts a new catalog article.
func CreateArticleHandler(svc article.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Article
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		created, err := svc.CreateArticle(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// GetArticleHandler fetches one article by ID.
func GetArticleHandler(svc article.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		art, err := svc.GetArticle(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, art)
	}
}

// ListArticlesHandler returns one page of articles, optionally filtered by a
// free-text search on code, barcode and designation.
func ListArticlesHandler(svc article.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.ListArticles(c.Request.Context(), page, limit, c.Query("search"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateArticleHandler replaces an article's stored fields.
func UpdateArticleHandler(svc article.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Article
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		input.ID = c.Param("id")
		updated, err := svc.UpdateArticle(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteArticleHandler removes an article by ID.
func DeleteArticleHandler(svc article.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
	}
}
