package invoice

import (
	"testing"
	"time"

	"github.com/pwnz15/backend-sld/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	allowed := []struct{ from, to models.InvoiceStatus }{
		{models.StatusDraft, models.StatusPending},
		{models.StatusDraft, models.StatusCancelled},
		{models.StatusPending, models.StatusPaid},
		{models.StatusPending, models.StatusCancelled},
		{models.StatusPending, models.StatusOverdue},
		{models.StatusOverdue, models.StatusPaid},
		{models.StatusOverdue, models.StatusCancelled},
		{models.StatusPaid, models.StatusCancelled},
	}
	for _, tc := range allowed {
		assert.NoError(t, ValidateTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	rejected := []struct{ from, to models.InvoiceStatus }{
		{models.StatusDraft, models.StatusPaid},
		{models.StatusDraft, models.StatusOverdue},
		{models.StatusPaid, models.StatusPending},
		{models.StatusPaid, models.StatusDraft},
		{models.StatusCancelled, models.StatusDraft},
		{models.StatusCancelled, models.StatusPending},
		{models.StatusOverdue, models.StatusPending},
	}
	for _, tc := range rejected {
		err := ValidateTransition(tc.from, tc.to)
		assert.ErrorIs(t, err, models.InvalidTransitionError{From: tc.from, To: tc.to})
	}
}

func TestApplyOverdue(t *testing.T) {
	now := time.Now()

	inv := &models.Invoice{Status: models.StatusPending, DueDate: now.Add(-24 * time.Hour)}
	assert.True(t, ApplyOverdue(inv, now))
	assert.Equal(t, models.StatusOverdue, inv.Status)

	// Idempotent once advanced.
	assert.False(t, ApplyOverdue(inv, now))

	fresh := &models.Invoice{Status: models.StatusPending, DueDate: now.Add(24 * time.Hour)}
	assert.False(t, ApplyOverdue(fresh, now))
	assert.Equal(t, models.StatusPending, fresh.Status)

	// Only PENDING invoices are promoted.
	draft := &models.Invoice{Status: models.StatusDraft, DueDate: now.Add(-24 * time.Hour)}
	assert.False(t, ApplyOverdue(draft, now))
	assert.Equal(t, models.StatusDraft, draft.Status)
}
