package article

import (
	"context"

	articleRepo "github.com/pwnz15/backend-sld/database/repository/article"
	"github.com/pwnz15/backend-sld/models"

	"github.com/go-redis/redis/v8"
)

// ArticleService manages the article catalog.
type ArticleService interface {
	CreateArticle(ctx context.Context, article models.Article) (*models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	ListArticles(ctx context.Context, page, limit int64, search string) (*models.ArticlePage, error)
	UpdateArticle(ctx context.Context, article models.Article) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// DefaultArticleService is the production implementation. Cache may be nil,
// in which case listing reads go straight to the store.
type DefaultArticleService struct {
	Repo  articleRepo.ArticleRepository
	Cache *redis.Client
}
