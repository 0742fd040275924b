package client

import (
	"context"
	"errors"
	"testing"

	"github.com/pwnz15/backend-sld/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	byID map[string]models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[string]models.Client)}
}

func (f *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	f.byID[c.ID] = *c
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, models.NotFoundError{Entity: "client", ID: id}
	}
	cp := c
	return &cp, nil
}

func (f *fakeClientRepo) GetByCode(_ context.Context, code string) (*models.Client, error) {
	for _, c := range f.byID {
		if c.CodeClient == code {
			cp := c
			return &cp, nil
		}
	}
	return nil, models.NotFoundError{Entity: "client", ID: code}
}

func (f *fakeClientRepo) Paginate(_ context.Context, page, _ int64, _ string) (*models.ClientPage, error) {
	return &models.ClientPage{CurrentPage: page}, nil
}

func (f *fakeClientRepo) GetAll(_ context.Context) ([]models.Client, error) { return nil, nil }

func (f *fakeClientRepo) Update(_ context.Context, c *models.Client) error {
	if _, ok := f.byID[c.ID]; !ok {
		return models.NotFoundError{Entity: "client", ID: c.ID}
	}
	f.byID[c.ID] = *c
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeClientRepo) BulkUpsert(_ context.Context, _ []models.Client) (int64, error) {
	return 0, nil
}

func TestCreateClient(t *testing.T) {
	svc := &DefaultClientService{Repo: newFakeClientRepo()}

	created, err := svc.CreateClient(context.Background(), models.Client{
		CodeClient: "CL001",
		Intitule:   "Ahmed",
		Mail:       "ahmed@example.tn",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateClientValidation(t *testing.T) {
	svc := &DefaultClientService{Repo: newFakeClientRepo()}

	_, err := svc.CreateClient(context.Background(), models.Client{Intitule: "Sans code"})
	var vErr models.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "CodeClient", vErr.Field)

	_, err = svc.CreateClient(context.Background(), models.Client{
		CodeClient: "CL002",
		Mail:       "pas-un-mail",
	})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Mail", vErr.Field)

	// An absent mail is fine.
	_, err = svc.CreateClient(context.Background(), models.Client{CodeClient: "CL003"})
	assert.NoError(t, err)
}
