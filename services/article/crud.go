package article

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	listCachePrefix = "articles:list:"
	listCacheTTL    = 10 * time.Minute
)

// CreateArticle inserts a new catalog article. CodeBar is required and must
// be unique.
func (s *DefaultArticleService) CreateArticle(ctx context.Context, article models.Article) (*models.Article, error) {
	if article.CodeBar == "" {
		return nil, models.ValidationError{Index: -1, Field: "CodeBar", Msg: "is required"}
	}

	article.ID = uuid.NewString()
	now := time.Now()
	if article.DateCreation.IsZero() {
		article.DateCreation = now
	}
	article.DateModification = now

	if err := s.Repo.Create(ctx, &article); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return &article, nil
}

// GetArticle retrieves an article by ID.
func (s *DefaultArticleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListArticles retrieves one page of articles, cache-aside when a cache
// client is configured.
func (s *DefaultArticleService) ListArticles(ctx context.Context, page, limit int64, search string) (*models.ArticlePage, error) {
	logger := utils.GetLogger()
	key := fmt.Sprintf("%s%d:%d:%s", listCachePrefix, page, limit, search)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var result models.ArticlePage
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	result, err := s.Repo.Paginate(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, key, payload, listCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache article page", zap.Error(err))
			}
		}
	}
	return result, nil
}

// UpdateArticle modifies an existing article and refreshes its modification
// date.
func (s *DefaultArticleService) UpdateArticle(ctx context.Context, article models.Article) (*models.Article, error) {
	if article.ID == "" {
		return nil, models.ValidationError{Index: -1, Field: "id", Msg: "is required"}
	}
	article.DateModification = time.Now()

	if err := s.Repo.Update(ctx, &article); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return &article, nil
}

// DeleteArticle removes an article by ID.
func (s *DefaultArticleService) DeleteArticle(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

// invalidateListCache drops every cached listing page after a write.
func (s *DefaultArticleService) invalidateListCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	logger := utils.GetLogger()
	iter := s.Cache.Scan(ctx, 0, listCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("failed to invalidate article cache entry", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("article cache invalidation scan failed", zap.Error(err))
	}
}
