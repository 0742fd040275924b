package articleRepo

import (
	"context"

	"github.com/pwnz15/backend-sld/models"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// Create inserts a new article record.
	Create(ctx context.Context, article *models.Article) error
	// GetByID retrieves an article by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Article, error)
	// GetByCodeBar retrieves an article by its barcode business code.
	GetByCodeBar(ctx context.Context, codeBar string) (*models.Article, error)
	// Paginate retrieves one page of articles, optionally filtered by a search term.
	Paginate(ctx context.Context, page, limit int64, search string) (*models.ArticlePage, error)
	// GetAll retrieves every article, sorted by CodeBar.
	GetAll(ctx context.Context) ([]models.Article, error)
	// Update modifies an existing article record.
	Update(ctx context.Context, article *models.Article) error
	// Delete removes an article record by its ID.
	Delete(ctx context.Context, id string) error
	// BulkUpsert submits one update-if-exists-else-insert bulk operation keyed
	// by CodeBar and reports the store's upserted+modified count.
	BulkUpsert(ctx context.Context, articles []models.Article) (int64, error)
}
