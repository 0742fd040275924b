package driver

import (
	"context"

	driverRepo "github.com/pwnz15/backend-sld/database/repository/driver"
	"github.com/pwnz15/backend-sld/models"

	"github.com/google/uuid"
)

// DriverService manages the driver roster.
type DriverService interface {
	CreateDriver(ctx context.Context, driver models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	ListDrivers(ctx context.Context, page, limit int64, search string) (*models.DriverPage, error)
	UpdateDriver(ctx context.Context, driver models.Driver) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id string) error
}

// DefaultDriverService is the production implementation.
type DefaultDriverService struct {
	Repo driverRepo.DriverRepository
}

// CreateDriver inserts a new driver record.
func (s *DefaultDriverService) CreateDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	if driver.Name == "" {
		return nil, models.ValidationError{Index: -1, Field: "name", Msg: "is required"}
	}
	if driver.PhoneNumber == "" {
		return nil, models.ValidationError{Index: -1, Field: "phoneNumber", Msg: "is required"}
	}
	if driver.Status == "" {
		driver.Status = "ACTIVE"
	}
	driver.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetDriver retrieves a driver by ID.
func (s *DefaultDriverService) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListDrivers retrieves one page of drivers.
func (s *DefaultDriverService) ListDrivers(ctx context.Context, page, limit int64, search string) (*models.DriverPage, error) {
	return s.Repo.Paginate(ctx, page, limit, search)
}

// UpdateDriver modifies an existing driver record.
func (s *DefaultDriverService) UpdateDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	if driver.ID == "" {
		return nil, models.ValidationError{Index: -1, Field: "id", Msg: "is required"}
	}
	if err := s.Repo.Update(ctx, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// DeleteDriver removes a driver by ID.
func (s *DefaultDriverService) DeleteDriver(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
