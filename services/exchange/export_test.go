package exchange

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pwnz15/backend-sld/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportArticlesHeaderRow(t *testing.T) {
	svc := &DefaultExchangeService{Articles: newFakeArticleRepo(), Clients: newFakeClientStore()}

	out, err := svc.ExportArticles(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(ArticleHeaders(), ","), lines[0])
}

func TestExportArticlesRows(t *testing.T) {
	repo := newFakeArticleRepo()
	created := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(context.Background(), &models.Article{
		ID:           "id-1",
		Code:         "ART001",
		CodeBar:      "619001",
		Designation:  "Cahier",
		Stock:        42,
		TVA:          19,
		DateCreation: created,
	}))
	svc := &DefaultExchangeService{Articles: repo, Clients: newFakeClientStore()}

	out, err := svc.ExportArticles(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "ART001")
	assert.Contains(t, lines[1], "619001")
	assert.Contains(t, lines[1], "Cahier")
	assert.Contains(t, lines[1], "01/02/2023")
}

// An exported client file is a valid import file: the round trip preserves
// every mapped field.
func TestExportClientsRoundTrip(t *testing.T) {
	store := newFakeClientStore()
	require.NoError(t, store.Create(context.Background(), &models.Client{
		ID:         "id-1",
		CodeClient: "CL001",
		Intitule:   "Mme Ben Salah",
		Tel1:       "71 123 456",
		Societe:    "Lycée El Menzah",
		Mail:       "bensalah@example.tn",
		Adresse:    "12 rue de Carthage, Tunis",
	}))
	svc := &DefaultExchangeService{Articles: newFakeArticleRepo(), Clients: store}

	out, err := svc.ExportClients(context.Background())
	require.NoError(t, err)

	fresh := newFakeClientStore()
	svc2 := &DefaultExchangeService{Articles: newFakeArticleRepo(), Clients: fresh}
	result, err := svc2.ImportClients(context.Background(), strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Success)

	got, err := fresh.GetByCode(context.Background(), "CL001")
	require.NoError(t, err)
	assert.Equal(t, "Mme Ben Salah", got.Intitule)
	assert.Equal(t, "71 123 456", got.Tel1)
	assert.Equal(t, "Lycée El Menzah", got.Societe)
	assert.Equal(t, "bensalah@example.tn", got.Mail)
	assert.Equal(t, "12 rue de Carthage, Tunis", got.Adresse)
}
