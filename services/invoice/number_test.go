package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextInvoiceNumberFirst(t *testing.T) {
	now := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-2503-0001", NextInvoiceNumber("", now))
}

func TestNextInvoiceNumberIncrements(t *testing.T) {
	now := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-2503-0008", NextInvoiceNumber("INV-2503-0007", now))
}

// The sequence continues across month boundaries; the YYMM prefix reflects
// the assignment date only.
func TestNextInvoiceNumberMonthRollover(t *testing.T) {
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-2504-0120", NextInvoiceNumber("INV-2503-0119", now))
}

func TestNextInvoiceNumberBeyondPadding(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-2506-10000", NextInvoiceNumber("INV-2505-9999", now))
}

func TestNextInvoiceNumberMalformedLatest(t *testing.T) {
	now := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-2503-0001", NextInvoiceNumber("FV-99", now))
	assert.Equal(t, "INV-2503-0001", NextInvoiceNumber("INV-2503-notanumber", now))
	assert.Equal(t, "INV-2503-0001", NextInvoiceNumber("INV-2503-0007-extra", now))
}
