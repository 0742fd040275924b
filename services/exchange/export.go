package exchange

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
)

// ExportArticles reads the full article collection and serializes it to
// comma-delimited text with the external header row first.
func (s *DefaultExchangeService) ExportArticles(ctx context.Context) (string, error) {
	articles, err := s.Articles.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(ArticleHeaders()); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}
	for i := range articles {
		if err := w.Write(ArticleRecord(&articles[i])); err != nil {
			return "", fmt.Errorf("failed to write article row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to serialize articles: %w", err)
	}
	return sb.String(), nil
}

// ExportClients reads the full client collection and serializes it to
// comma-delimited text with the external header row first.
func (s *DefaultExchangeService) ExportClients(ctx context.Context) (string, error) {
	clients, err := s.Clients.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(ClientHeaders()); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}
	for i := range clients {
		if err := w.Write(ClientRecord(&clients[i])); err != nil {
			return "", fmt.Errorf("failed to write client row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to serialize clients: %w", err)
	}
	return sb.String(), nil
}
