package invoice

import (
	"time"

	"github.com/pwnz15/backend-sld/models"
)

// allowedTransitions is the invoice lifecycle table. CANCELLED is terminal.
var allowedTransitions = map[models.InvoiceStatus][]models.InvoiceStatus{
	models.StatusDraft:     {models.StatusPending, models.StatusCancelled},
	models.StatusPending:   {models.StatusPaid, models.StatusCancelled, models.StatusOverdue},
	models.StatusOverdue:   {models.StatusPaid, models.StatusCancelled},
	models.StatusPaid:      {models.StatusCancelled},
	models.StatusCancelled: {},
}

// ValidateTransition checks a requested status change against the lifecycle
// table. An illegal change rejects the whole update.
func ValidateTransition(from, to models.InvoiceStatus) error {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return models.InvalidTransitionError{From: from, To: to}
}

// ApplyOverdue advances a PENDING invoice whose due date has passed to
// OVERDUE. It runs on every write, before any explicit transition is
// validated, so requested transitions are checked against the post-overdue
// state. Reports whether the status changed.
func ApplyOverdue(inv *models.Invoice, now time.Time) bool {
	if inv.Status == models.StatusPending && inv.DueDate.Before(now) {
		inv.Status = models.StatusOverdue
		return true
	}
	return false
}
