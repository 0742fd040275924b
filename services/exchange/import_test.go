package exchange

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pwnz15/backend-sld/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeArticleRepo keeps articles keyed by CodeBar and can be made to fail
// specific bulk calls.
type fakeArticleRepo struct {
	byCodeBar map[string]models.Article
	calls     int
	// failCalls holds 1-based bulk call numbers that should fail.
	failCalls map[int]bool
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byCodeBar: make(map[string]models.Article), failCalls: map[int]bool{}}
}

func (f *fakeArticleRepo) Create(_ context.Context, a *models.Article) error {
	f.byCodeBar[a.CodeBar] = *a
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (*models.Article, error) {
	for _, a := range f.byCodeBar {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, models.NotFoundError{Entity: "article", ID: id}
}

func (f *fakeArticleRepo) GetByCodeBar(_ context.Context, codeBar string) (*models.Article, error) {
	a, ok := f.byCodeBar[codeBar]
	if !ok {
		return nil, models.NotFoundError{Entity: "article", ID: codeBar}
	}
	cp := a
	return &cp, nil
}

func (f *fakeArticleRepo) Paginate(_ context.Context, page, _ int64, _ string) (*models.ArticlePage, error) {
	all, _ := f.GetAll(context.Background())
	return &models.ArticlePage{Articles: all, Total: int64(len(all)), Pages: 1, CurrentPage: page}, nil
}

func (f *fakeArticleRepo) GetAll(_ context.Context) ([]models.Article, error) {
	out := make([]models.Article, 0, len(f.byCodeBar))
	for _, a := range f.byCodeBar {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArticleRepo) Update(_ context.Context, a *models.Article) error {
	f.byCodeBar[a.CodeBar] = *a
	return nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeArticleRepo) BulkUpsert(_ context.Context, articles []models.Article) (int64, error) {
	f.calls++
	if f.failCalls[f.calls] {
		return 0, errors.New("bulk write failed")
	}
	var count int64
	for _, a := range articles {
		if existing, ok := f.byCodeBar[a.CodeBar]; ok {
			// Upserts never replace the stored identity.
			a.ID = existing.ID
		}
		f.byCodeBar[a.CodeBar] = a
		count++
	}
	return count, nil
}

// fakeClientStore mirrors fakeArticleRepo for clients.
type fakeClientStore struct {
	byCode map[string]models.Client
	calls  int
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{byCode: make(map[string]models.Client)}
}

func (f *fakeClientStore) Create(_ context.Context, c *models.Client) error {
	f.byCode[c.CodeClient] = *c
	return nil
}

func (f *fakeClientStore) GetByID(_ context.Context, id string) (*models.Client, error) {
	for _, c := range f.byCode {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, models.NotFoundError{Entity: "client", ID: id}
}

func (f *fakeClientStore) GetByCode(_ context.Context, code string) (*models.Client, error) {
	c, ok := f.byCode[code]
	if !ok {
		return nil, models.NotFoundError{Entity: "client", ID: code}
	}
	cp := c
	return &cp, nil
}

func (f *fakeClientStore) Paginate(_ context.Context, page, _ int64, _ string) (*models.ClientPage, error) {
	all, _ := f.GetAll(context.Background())
	return &models.ClientPage{Clients: all, Total: int64(len(all)), Pages: 1, CurrentPage: page}, nil
}

func (f *fakeClientStore) GetAll(_ context.Context) ([]models.Client, error) {
	out := make([]models.Client, 0, len(f.byCode))
	for _, c := range f.byCode {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientStore) Update(_ context.Context, c *models.Client) error {
	f.byCode[c.CodeClient] = *c
	return nil
}

func (f *fakeClientStore) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeClientStore) BulkUpsert(_ context.Context, clients []models.Client) (int64, error) {
	f.calls++
	var count int64
	for _, c := range clients {
		if existing, ok := f.byCode[c.CodeClient]; ok {
			c.ID = existing.ID
		}
		f.byCode[c.CodeClient] = c
		count++
	}
	return count, nil
}

func TestImportArticles(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultExchangeService{Articles: repo, Clients: newFakeClientStore()}

	csvData := "Code,Code à Bar,Désignation,Stock,TVA\n" +
		"A1,619001,Stylo bleu,10,19\n" +
		"A2,619002,Stylo rouge,5,19\n"

	result, err := svc.ImportArticles(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Success)
	assert.Equal(t, int64(0), result.Failed)

	stored, err := repo.GetByCodeBar(context.Background(), "619001")
	require.NoError(t, err)
	assert.Equal(t, "Stylo bleu", stored.Designation)
	assert.Equal(t, 10.0, stored.Stock)
}

func TestImportArticlesDropsRowsWithoutCodeBar(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultExchangeService{Articles: repo, Clients: newFakeClientStore()}

	csvData := "Code,Code à Bar,Désignation\n" +
		"A1,619001,Kept\n" +
		"A2,,Dropped\n"

	result, err := svc.ImportArticles(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	// The dropped row counts toward neither total.
	assert.Equal(t, int64(1), result.Success)
	assert.Equal(t, int64(0), result.Failed)
}

func TestImportArticlesBatchFailureDoesNotAbort(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.failCalls[2] = true
	svc := &DefaultExchangeService{Articles: repo, Clients: newFakeClientStore(), BatchSize: 2}

	var sb strings.Builder
	sb.WriteString("Code à Bar,Désignation\n")
	for _, code := range []string{"1", "2", "3", "4", "5", "6"} {
		sb.WriteString("61900" + code + ",Article " + code + "\n")
	}

	result, err := svc.ImportArticles(context.Background(), strings.NewReader(sb.String()))
	require.NoError(t, err)

	// Batches 1 and 3 land, batch 2 fails whole.
	assert.Equal(t, int64(4), result.Success)
	assert.Equal(t, int64(2), result.Failed)
	assert.Equal(t, 3, repo.calls)
}

func TestImportArticlesReimportKeepsIdentity(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultExchangeService{Articles: repo, Clients: newFakeClientStore()}

	csvData := "Code à Bar,Désignation,Stock\n619001,Stylo bleu,10\n"
	_, err := svc.ImportArticles(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	first, err := repo.GetByCodeBar(context.Background(), "619001")
	require.NoError(t, err)

	csvData = "Code à Bar,Désignation,Stock\n619001,Stylo bleu nuit,12\n"
	_, err = svc.ImportArticles(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	second, err := repo.GetByCodeBar(context.Background(), "619001")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Stylo bleu nuit", second.Designation)
	assert.Equal(t, 12.0, second.Stock)
}

func TestImportArticlesBOMAndCommaDecimals(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultExchangeService{Articles: repo, Clients: newFakeClientStore()}

	csvData := "\ufeffCode à Bar,Désignation,Prix Achat HT\n619001,Agenda,3,5\n"
	// The extra comma splits the row; Prix Achat HT gets "3" and the trailing
	// cell is ignored since it has no header.
	result, err := svc.ImportArticles(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Success)

	quoted := "Code à Bar,Désignation,Prix Achat HT\n619002,Agenda,\"3,5\"\n"
	_, err = svc.ImportArticles(context.Background(), strings.NewReader(quoted))
	require.NoError(t, err)

	stored, err := repo.GetByCodeBar(context.Background(), "619002")
	require.NoError(t, err)
	assert.Equal(t, 3.5, stored.PrixAchatHT)
}

func TestImportClients(t *testing.T) {
	store := newFakeClientStore()
	svc := &DefaultExchangeService{Articles: newFakeArticleRepo(), Clients: store}

	csvData := "Code Client,Intitulé,Tél 1,Mail\n" +
		"CL001,Ahmed,71111111,ahmed@example.tn\n" +
		",Sans code,71222222,\n" +
		"CL002,Leila,71333333,\n"

	result, err := svc.ImportClients(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Success)
	assert.Equal(t, int64(0), result.Failed)

	stored, err := store.GetByCode(context.Background(), "CL001")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", stored.Intitule)
	assert.Equal(t, "ahmed@example.tn", stored.Mail)
}

func TestImportEmptyStream(t *testing.T) {
	svc := &DefaultExchangeService{Articles: newFakeArticleRepo(), Clients: newFakeClientStore()}

	_, err := svc.ImportArticles(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}
