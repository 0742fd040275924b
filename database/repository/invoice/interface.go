package invoiceRepo

import (
	"context"

	"github.com/pwnz15/backend-sld/models"

	"go.mongodb.org/mongo-driver/bson"
)

// InvoiceRepository defines methods for invoice data access.
//
// Insert persists under the unique invoiceNumber index; a collision surfaces
// as models.DuplicateKeyError, which the service layer treats as the signal to
// regenerate the number and retry.
type InvoiceRepository interface {
	// Insert persists a new invoice record.
	Insert(ctx context.Context, invoice *models.Invoice) error
	// GetByID retrieves an invoice by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	// LatestInvoiceNumber returns the most recently assigned invoice number
	// across the whole collection, or "" if no invoice exists.
	LatestInvoiceNumber(ctx context.Context) (string, error)
	// Paginate retrieves one page of invoices matching the given filter.
	Paginate(ctx context.Context, page, limit int64, filter bson.M) (*models.InvoicePage, error)
	// Update replaces the mutable fields of an existing invoice record.
	Update(ctx context.Context, invoice *models.Invoice) error
	// Delete removes an invoice record by its ID.
	Delete(ctx context.Context, id string) error
}
