package exchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// readRows parses a CSV stream into header-keyed rows. The first record is
// the header row; a UTF-8 BOM on the first header is tolerated. Cells are
// trimmed.
func readRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("CSV is empty")
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportArticles maps CSV rows into canonical articles and submits them as
// fixed-size bulk upserts keyed by CodeBar.
//
// Accounting is per batch: a failed bulk call counts every record in that
// batch as failed and the run continues with the next batch; a successful
// call adds the store-reported upserted+modified count (rows that matched
// with no actual change are undercounted, an accepted tradeoff of the bulk
// semantics). The run never aborts early.
func (s *DefaultExchangeService) ImportArticles(ctx context.Context, r io.Reader) (models.BatchResult, error) {
	logger := utils.GetLogger()

	rows, err := readRows(r)
	if err != nil {
		return models.BatchResult{}, err
	}

	articles := make([]models.Article, 0, len(rows))
	for _, row := range rows {
		article, ok := MapArticleRow(row)
		if !ok {
			continue
		}
		article.ID = uuid.NewString()
		articles = append(articles, article)
	}
	logger.Info("parsed article import", zap.Int("rows", len(rows)), zap.Int("valid", len(articles)))

	var result models.BatchResult
	size := s.batchSize()
	for start := 0; start < len(articles); start += size {
		end := start + size
		if end > len(articles) {
			end = len(articles)
		}
		batch := articles[start:end]

		count, err := s.Articles.BulkUpsert(ctx, batch)
		if err != nil {
			result.Failed += int64(len(batch))
			logger.Error("article batch failed",
				zap.Int("batch", start/size+1),
				zap.Int("size", len(batch)),
				zap.Error(err))
			continue
		}
		result.Success += count
	}

	logger.Info("article import completed",
		zap.Int64("success", result.Success),
		zap.Int64("failed", result.Failed))
	return result, nil
}

// ImportClients maps CSV rows into canonical clients and submits them as
// fixed-size bulk upserts keyed by CodeClient, with the same per-batch
// accounting as ImportArticles.
func (s *DefaultExchangeService) ImportClients(ctx context.Context, r io.Reader) (models.BatchResult, error) {
	logger := utils.GetLogger()

	rows, err := readRows(r)
	if err != nil {
		return models.BatchResult{}, err
	}

	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		client, ok := MapClientRow(row)
		if !ok {
			continue
		}
		client.ID = uuid.NewString()
		clients = append(clients, client)
	}
	logger.Info("parsed client import", zap.Int("rows", len(rows)), zap.Int("valid", len(clients)))

	var result models.BatchResult
	size := s.batchSize()
	for start := 0; start < len(clients); start += size {
		end := start + size
		if end > len(clients) {
			end = len(clients)
		}
		batch := clients[start:end]

		count, err := s.Clients.BulkUpsert(ctx, batch)
		if err != nil {
			result.Failed += int64(len(batch))
			logger.Error("client batch failed",
				zap.Int("batch", start/size+1),
				zap.Int("size", len(batch)),
				zap.Error(err))
			continue
		}
		result.Success += count
	}

	logger.Info("client import completed",
		zap.Int64("success", result.Success),
		zap.Int64("failed", result.Failed))
	return result, nil
}
