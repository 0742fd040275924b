package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// maxNumberRetries bounds the generate-persist-retry loop on invoice number
// collisions.
const maxNumberRetries = 3

// CreateInvoice computes the line totals, assigns the next invoice number and
// persists the record. A duplicate invoiceNumber means another creation won
// the race; the number is regenerated and the insert retried up to
// maxNumberRetries times.
func (s *DefaultInvoiceService) CreateInvoice(ctx context.Context, input CreateInput) (*models.Invoice, error) {
	logger := utils.GetLogger()

	items, totals, err := ComputeTotals(input.Items)
	if err != nil {
		return nil, err
	}

	if _, err := s.Clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	if input.DriverID != "" {
		if _, err := s.Drivers.GetByID(ctx, input.DriverID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	inv := &models.Invoice{
		ID:            uuid.NewString(),
		Client:        input.ClientID,
		Driver:        input.DriverID,
		User:          input.UserID,
		Items:         items,
		SubTotalHT:    totals.SubTotalHT,
		TotalDiscount: totals.TotalDiscount,
		TotalTVA:      totals.TotalTVA,
		TotalTTC:      totals.TotalTTC,
		Status:        models.StatusDraft,
		PaymentStatus: models.PaymentUnpaid,
		IssueDate:     now,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
		TermsAndConds: input.Terms,
		Metadata: models.InvoiceMetadata{
			CreatedBy:        input.UserID,
			LastModifiedBy:   input.UserID,
			LastModifiedDate: now,
		},
	}

	for attempt := 1; attempt <= maxNumberRetries; attempt++ {
		latest, err := s.Repo.LatestInvoiceNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read latest invoice number: %w", err)
		}
		inv.InvoiceNumber = NextInvoiceNumber(latest, time.Now())

		err = s.Repo.Insert(ctx, inv)
		if err == nil {
			logger.Info("invoice created",
				zap.String("invoiceNumber", inv.InvoiceNumber),
				zap.String("client", inv.Client),
				zap.Float64("totalTTC", inv.TotalTTC))
			return inv, nil
		}

		var dup models.DuplicateKeyError
		if !errors.As(err, &dup) {
			return nil, err
		}
		logger.Warn("invoice number collision, regenerating",
			zap.String("invoiceNumber", inv.InvoiceNumber),
			zap.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("failed to create invoice after %d number collisions", maxNumberRetries)
}

// GetInvoice retrieves an invoice by ID.
func (s *DefaultInvoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}

// SearchInvoices retrieves one page of invoices matching the filters.
func (s *DefaultInvoiceService) SearchInvoices(ctx context.Context, page, limit int64, filters models.InvoiceSearchFilters) (*models.InvoicePage, error) {
	query := bson.M{}
	if filters.Status != "" {
		query["status"] = filters.Status
	}
	if filters.PaymentStatus != "" {
		query["paymentStatus"] = filters.PaymentStatus
	}
	if filters.ClientID != "" {
		query["client"] = filters.ClientID
	}
	if filters.UserID != "" {
		query["user"] = filters.UserID
	}
	if filters.StartDate != nil || filters.EndDate != nil {
		dateRange := bson.M{}
		if filters.StartDate != nil {
			dateRange["$gte"] = *filters.StartDate
		}
		if filters.EndDate != nil {
			dateRange["$lte"] = *filters.EndDate
		}
		query["issueDate"] = dateRange
	}
	if filters.MinAmount > 0 || filters.MaxAmount > 0 {
		amountRange := bson.M{}
		if filters.MinAmount > 0 {
			amountRange["$gte"] = filters.MinAmount
		}
		if filters.MaxAmount > 0 {
			amountRange["$lte"] = filters.MaxAmount
		}
		query["totalTTC"] = amountRange
	}

	return s.Repo.Paginate(ctx, page, limit, query)
}

// UpdateInvoice applies a partial patch. Overdue promotion runs first, then
// any requested status change is validated against the post-overdue state; an
// illegal transition rejects the update in full. Aggregates are recomputed
// whenever items change, and the modification metadata is refreshed on every
// write.
func (s *DefaultInvoiceService) UpdateInvoice(ctx context.Context, id string, input UpdateInput, userID string) (*models.Invoice, error) {
	logger := utils.GetLogger()

	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if ApplyOverdue(inv, now) {
		logger.Info("invoice auto-advanced to OVERDUE",
			zap.String("invoiceNumber", inv.InvoiceNumber),
			zap.Time("dueDate", inv.DueDate))
	}

	if input.Status != nil {
		if err := ValidateTransition(inv.Status, *input.Status); err != nil {
			return nil, err
		}
		inv.Status = *input.Status
	}

	if input.Items != nil {
		items, totals, err := ComputeTotals(input.Items)
		if err != nil {
			return nil, err
		}
		inv.Items = items
		inv.SubTotalHT = totals.SubTotalHT
		inv.TotalDiscount = totals.TotalDiscount
		inv.TotalTVA = totals.TotalTVA
		inv.TotalTTC = totals.TotalTTC
	}

	if input.PaymentStatus != nil {
		inv.PaymentStatus = *input.PaymentStatus
	}
	if input.PaymentMethod != nil {
		inv.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentRef != nil {
		inv.PaymentRef = *input.PaymentRef
	}
	if input.PaymentDate != nil {
		inv.PaymentDate = input.PaymentDate
	}
	if input.DriverID != nil {
		if *input.DriverID != "" {
			if _, err := s.Drivers.GetByID(ctx, *input.DriverID); err != nil {
				return nil, err
			}
		}
		inv.Driver = *input.DriverID
	}
	if input.DueDate != nil {
		inv.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}
	if input.Terms != nil {
		inv.TermsAndConds = *input.Terms
	}

	inv.Metadata.LastModifiedBy = userID
	inv.Metadata.LastModifiedDate = now

	if err := s.Repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// DeleteInvoice removes an invoice. Only DRAFT invoices may be deleted.
func (s *DefaultInvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.Status != models.StatusDraft {
		return models.PreconditionError{Msg: "only draft invoices can be deleted"}
	}
	return s.Repo.Delete(ctx, id)
}
