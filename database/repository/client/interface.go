package clientRepo

import (
	"context"

	"github.com/pwnz15/backend-sld/models"
)

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// Create inserts a new client record.
	Create(ctx context.Context, client *models.Client) error
	// GetByID retrieves a client by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Client, error)
	// GetByCode retrieves a client by its CodeClient business code.
	GetByCode(ctx context.Context, code string) (*models.Client, error)
	// Paginate retrieves one page of clients, optionally filtered by a search term.
	Paginate(ctx context.Context, page, limit int64, search string) (*models.ClientPage, error)
	// GetAll retrieves every client, sorted by CodeClient.
	GetAll(ctx context.Context) ([]models.Client, error)
	// Update modifies an existing client record.
	Update(ctx context.Context, client *models.Client) error
	// Delete removes a client record by its ID.
	Delete(ctx context.Context, id string) error
	// BulkUpsert submits one update-if-exists-else-insert bulk operation keyed
	// by CodeClient and reports the store's upserted+modified count.
	BulkUpsert(ctx context.Context, clients []models.Client) (int64, error)
}
