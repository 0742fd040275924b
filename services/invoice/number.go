package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextInvoiceNumber produces the next number in the INV-YYMM-NNNN series given
// the most recently assigned number (empty when no invoice exists yet).
//
// The sequence is monotonic across the whole history: the suffix of the latest
// number is parsed and incremented regardless of its year/month, so the YYMM
// prefix is informational, not a partition key. When the suffix does not parse
// the sequence restarts at 1.
//
// Generation is not atomic. Two concurrent callers reading the same latest
// number will produce the same result; the unique index on invoiceNumber is
// the true arbiter, and callers retry generation on a duplicate-key failure.
func NextInvoiceNumber(latest string, now time.Time) string {
	sequence := 1
	if latest != "" {
		parts := strings.Split(latest, "-")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				sequence = n + 1
			}
		}
	}
	return fmt.Sprintf("INV-%s-%04d", now.Format("0601"), sequence)
}
