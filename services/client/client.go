package client

import (
	"context"
	"strings"

	clientRepo "github.com/pwnz15/backend-sld/database/repository/client"
	"github.com/pwnz15/backend-sld/models"

	"github.com/google/uuid"
)

// ClientService manages the client catalog.
type ClientService interface {
	CreateClient(ctx context.Context, client models.Client) (*models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	ListClients(ctx context.Context, page, limit int64, search string) (*models.ClientPage, error)
	UpdateClient(ctx context.Context, client models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

// validate checks the client's required and format-constrained fields.
func validate(c *models.Client) error {
	if c.CodeClient == "" {
		return models.ValidationError{Index: -1, Field: "CodeClient", Msg: "is required"}
	}
	if c.Mail != "" && !strings.Contains(c.Mail, "@") {
		return models.ValidationError{Index: -1, Field: "Mail", Msg: "must contain @"}
	}
	return nil
}

// CreateClient inserts a new client record.
func (s *DefaultClientService) CreateClient(ctx context.Context, client models.Client) (*models.Client, error) {
	if err := validate(&client); err != nil {
		return nil, err
	}
	client.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetClient retrieves a client by ID.
func (s *DefaultClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListClients retrieves one page of clients.
func (s *DefaultClientService) ListClients(ctx context.Context, page, limit int64, search string) (*models.ClientPage, error) {
	return s.Repo.Paginate(ctx, page, limit, search)
}

// UpdateClient modifies an existing client record.
func (s *DefaultClientService) UpdateClient(ctx context.Context, client models.Client) (*models.Client, error) {
	if client.ID == "" {
		return nil, models.ValidationError{Index: -1, Field: "id", Msg: "is required"}
	}
	if err := validate(&client); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a client by ID.
func (s *DefaultClientService) DeleteClient(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
