package models

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "DRAFT"
	StatusPending   InvoiceStatus = "PENDING"
	StatusPaid      InvoiceStatus = "PAID"
	StatusCancelled InvoiceStatus = "CANCELLED"
	StatusOverdue   InvoiceStatus = "OVERDUE"
)

// PaymentStatus tracks payment collection independently of the invoice status.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// Payment methods accepted at the counter.
const (
	PaymentCash         = "CASH"
	PaymentCheck        = "CHECK"
	PaymentBankTransfer = "BANK_TRANSFER"
)

// InvoiceItem is one line of an invoice. TotalHT and TotalTTC are derived and
// always recomputed from the raw fields.
type InvoiceItem struct {
	Article   string  `bson:"article" json:"article"` // article code
	Quantity  float64 `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Discount  float64 `bson:"discount" json:"discount"` // percentage 0-100
	TVA       float64 `bson:"tva" json:"tva"`           // percentage
	TotalHT   float64 `bson:"totalHT" json:"totalHT"`
	TotalTTC  float64 `bson:"totalTTC" json:"totalTTC"`
}

// InvoiceMetadata records who touched the invoice last.
type InvoiceMetadata struct {
	CreatedBy        string    `bson:"createdBy" json:"createdBy"`
	LastModifiedBy   string    `bson:"lastModifiedBy" json:"lastModifiedBy"`
	LastModifiedDate time.Time `bson:"lastModifiedDate" json:"lastModifiedDate"`
}

// Invoice is a billing record. The four monetary aggregates are a pure
// function of Items and are recomputed on every item change, never set
// independently.
type Invoice struct {
	ID             string          `bson:"id" json:"id"`
	InvoiceNumber  string          `bson:"invoiceNumber" json:"invoiceNumber"`
	Client         string          `bson:"client" json:"client"`
	Driver         string          `bson:"driver,omitempty" json:"driver,omitempty"`
	User           string          `bson:"user" json:"user"`
	Items          []InvoiceItem   `bson:"items" json:"items"`
	SubTotalHT     float64         `bson:"subTotalHT" json:"subTotalHT"`
	TotalDiscount  float64         `bson:"totalDiscount" json:"totalDiscount"`
	TotalTVA       float64         `bson:"totalTVA" json:"totalTVA"`
	TotalTTC       float64         `bson:"totalTTC" json:"totalTTC"`
	Status         InvoiceStatus   `bson:"status" json:"status"`
	PaymentStatus  PaymentStatus   `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod  string          `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentRef     string          `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`
	PaymentDate    *time.Time      `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	IssueDate      time.Time       `bson:"issueDate" json:"issueDate"`
	DueDate        time.Time       `bson:"dueDate" json:"dueDate"`
	Notes          string          `bson:"notes,omitempty" json:"notes,omitempty"`
	TermsAndConds  string          `bson:"termsAndConditions,omitempty" json:"termsAndConditions,omitempty"`
	Metadata       InvoiceMetadata `bson:"metadata" json:"metadata"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// InvoicePage is one page of a paginated invoice listing.
type InvoicePage struct {
	Invoices    []Invoice `json:"invoices"`
	Total       int64     `json:"total"`
	Pages       int64     `json:"pages"`
	CurrentPage int64     `json:"currentPage"`
}

// InvoiceSearchFilters narrows a paginated invoice listing.
type InvoiceSearchFilters struct {
	Status        InvoiceStatus `json:"status,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	ClientID      string        `json:"clientId,omitempty"`
	UserID        string        `json:"userId,omitempty"`
	StartDate     *time.Time    `json:"startDate,omitempty"`
	EndDate       *time.Time    `json:"endDate,omitempty"`
	MinAmount     float64       `json:"minAmount,omitempty"`
	MaxAmount     float64       `json:"maxAmount,omitempty"`
}
