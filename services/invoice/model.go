package invoice

import (
	"time"

	"github.com/pwnz15/backend-sld/models"
)

// ItemInput is one raw invoice line as submitted by the caller. Discount is a
// percentage and defaults to 0 when omitted.
type ItemInput struct {
	ArticleCode string  `json:"articleCode" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Discount    float64 `json:"discount"`
	TVA         float64 `json:"tva"`
}

// Totals are the invoice-level monetary aggregates derived from the items.
type Totals struct {
	SubTotalHT    float64 `json:"subTotalHT"`
	TotalDiscount float64 `json:"totalDiscount"`
	TotalTVA      float64 `json:"totalTVA"`
	TotalTTC      float64 `json:"totalTTC"`
}

// CreateInput is the payload for creating an invoice.
type CreateInput struct {
	ClientID string      `json:"clientId" binding:"required"`
	DriverID string      `json:"driverId"`
	UserID   string      `json:"-"`
	Items    []ItemInput `json:"items" binding:"required"`
	DueDate  time.Time   `json:"dueDate" binding:"required"`
	Notes    string      `json:"notes"`
	Terms    string      `json:"termsAndConditions"`
}

// UpdateInput is a partial invoice patch. Nil pointers leave the field
// untouched.
type UpdateInput struct {
	Status        *models.InvoiceStatus `json:"status"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
	PaymentMethod *string               `json:"paymentMethod"`
	PaymentRef    *string               `json:"paymentReference"`
	PaymentDate   *time.Time            `json:"paymentDate"`
	DriverID      *string               `json:"driverId"`
	Items         []ItemInput           `json:"items"`
	DueDate       *time.Time            `json:"dueDate"`
	Notes         *string               `json:"notes"`
	Terms         *string               `json:"termsAndConditions"`
}
