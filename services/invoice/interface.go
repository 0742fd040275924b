package invoice

import (
	"context"

	clientRepo "github.com/pwnz15/backend-sld/database/repository/client"
	driverRepo "github.com/pwnz15/backend-sld/database/repository/driver"
	invoiceRepo "github.com/pwnz15/backend-sld/database/repository/invoice"
	"github.com/pwnz15/backend-sld/models"
)

// InvoiceService manages the billing record lifecycle.
type InvoiceService interface {
	// CreateInvoice computes item totals, assigns an invoice number and
	// persists the record, retrying number generation on a collision.
	CreateInvoice(ctx context.Context, input CreateInput) (*models.Invoice, error)
	// GetInvoice retrieves an invoice by ID.
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	// SearchInvoices retrieves one page of invoices matching the filters.
	SearchInvoices(ctx context.Context, page, limit int64, filters models.InvoiceSearchFilters) (*models.InvoicePage, error)
	// UpdateInvoice applies a partial patch through the status machine.
	UpdateInvoice(ctx context.Context, id string, input UpdateInput, userID string) (*models.Invoice, error)
	// DeleteInvoice removes an invoice; only DRAFT invoices may be deleted.
	DeleteInvoice(ctx context.Context, id string) error
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo    invoiceRepo.InvoiceRepository
	Clients clientRepo.ClientRepository
	Drivers driverRepo.DriverRepository
}
