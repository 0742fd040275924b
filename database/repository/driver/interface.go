package driverRepo

import (
	"context"

	"github.com/pwnz15/backend-sld/models"
)

// DriverRepository defines methods for driver data access.
type DriverRepository interface {
	// Create inserts a new driver record.
	Create(ctx context.Context, driver *models.Driver) error
	// GetByID retrieves a driver by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	// Paginate retrieves one page of drivers, optionally filtered by a search term.
	Paginate(ctx context.Context, page, limit int64, search string) (*models.DriverPage, error)
	// Update modifies an existing driver record.
	Update(ctx context.Context, driver *models.Driver) error
	// Delete removes a driver record by its ID.
	Delete(ctx context.Context, id string) error
}
