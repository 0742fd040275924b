package exchange

import (
	"context"
	"io"

	articleRepo "github.com/pwnz15/backend-sld/database/repository/article"
	clientRepo "github.com/pwnz15/backend-sld/database/repository/client"
	"github.com/pwnz15/backend-sld/models"
)

// ExchangeService moves catalog data in and out of the store as CSV.
type ExchangeService interface {
	// ImportArticles streams article rows into batched upserts and reports
	// success/failure counts for the run.
	ImportArticles(ctx context.Context, r io.Reader) (models.BatchResult, error)
	// ImportClients streams client rows into batched upserts and reports
	// success/failure counts for the run.
	ImportClients(ctx context.Context, r io.Reader) (models.BatchResult, error)
	// ExportArticles serializes the full article collection to CSV text.
	ExportArticles(ctx context.Context) (string, error)
	// ExportClients serializes the full client collection to CSV text.
	ExportClients(ctx context.Context) (string, error)
}

// DefaultExchangeService is the production implementation.
type DefaultExchangeService struct {
	Articles articleRepo.ArticleRepository
	Clients  clientRepo.ClientRepository
	// BatchSize is the number of records per bulk upsert; defaults to 100.
	BatchSize int
}

func (s *DefaultExchangeService) batchSize() int {
	if s.BatchSize > 0 {
		return s.BatchSize
	}
	return 100
}
