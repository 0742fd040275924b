package article

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pwnz15/backend-sld/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArticleRepo struct {
	byID      map[string]models.Article
	paginates int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byID: make(map[string]models.Article)}
}

func (f *fakeArticleRepo) Create(_ context.Context, a *models.Article) error {
	f.byID[a.ID] = *a
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (*models.Article, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, models.NotFoundError{Entity: "article", ID: id}
	}
	cp := a
	return &cp, nil
}

func (f *fakeArticleRepo) GetByCodeBar(_ context.Context, codeBar string) (*models.Article, error) {
	for _, a := range f.byID {
		if a.CodeBar == codeBar {
			cp := a
			return &cp, nil
		}
	}
	return nil, models.NotFoundError{Entity: "article", ID: codeBar}
}

func (f *fakeArticleRepo) Paginate(_ context.Context, page, _ int64, _ string) (*models.ArticlePage, error) {
	f.paginates++
	out := make([]models.Article, 0, len(f.byID))
	for _, a := range f.byID {
		out = append(out, a)
	}
	return &models.ArticlePage{Articles: out, Total: int64(len(out)), Pages: 1, CurrentPage: page}, nil
}

func (f *fakeArticleRepo) GetAll(_ context.Context) ([]models.Article, error) { return nil, nil }

func (f *fakeArticleRepo) Update(_ context.Context, a *models.Article) error {
	if _, ok := f.byID[a.ID]; !ok {
		return models.NotFoundError{Entity: "article", ID: a.ID}
	}
	f.byID[a.ID] = *a
	return nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeArticleRepo) BulkUpsert(_ context.Context, _ []models.Article) (int64, error) {
	return 0, nil
}

func TestCreateArticle(t *testing.T) {
	svc := &DefaultArticleService{Repo: newFakeArticleRepo()}

	created, err := svc.CreateArticle(context.Background(), models.Article{
		CodeBar:     "619001",
		Designation: "Cahier",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.DateCreation.IsZero())
	assert.False(t, created.DateModification.IsZero())
}

func TestCreateArticleRequiresCodeBar(t *testing.T) {
	svc := &DefaultArticleService{Repo: newFakeArticleRepo()}

	_, err := svc.CreateArticle(context.Background(), models.Article{Designation: "Sans code"})

	var vErr models.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "CodeBar", vErr.Field)
}

func TestUpdateArticleRefreshesModificationDate(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultArticleService{Repo: repo}

	created, err := svc.CreateArticle(context.Background(), models.Article{CodeBar: "619001"})
	require.NoError(t, err)

	stale := created.DateModification.Add(-time.Hour)
	created.DateModification = stale
	updated, err := svc.UpdateArticle(context.Background(), *created)
	require.NoError(t, err)

	assert.True(t, updated.DateModification.After(stale))
}

// Without a cache client every listing hits the store.
func TestListArticlesWithoutCache(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultArticleService{Repo: repo}

	_, err := svc.ListArticles(context.Background(), 1, 20, "")
	require.NoError(t, err)
	_, err = svc.ListArticles(context.Background(), 1, 20, "")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.paginates)
}
