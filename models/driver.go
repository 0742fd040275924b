package models

import "time"

// DriverLicense is a license held by a driver.
type DriverLicense struct {
	Number     string    `bson:"number" json:"number"`
	Type       string    `bson:"type" json:"type"`
	ExpiryDate time.Time `bson:"expiryDate" json:"expiryDate"`
}

// Driver represents a delivery driver.
type Driver struct {
	ID          string          `bson:"id" json:"id"`
	Name        string          `bson:"name" json:"name"`
	PhoneNumber string          `bson:"phoneNumber" json:"phoneNumber"`
	Licenses    []DriverLicense `bson:"licenses" json:"licenses"`
	Address     string          `bson:"address,omitempty" json:"address,omitempty"`
	Email       string          `bson:"email,omitempty" json:"email,omitempty"`
	Status      string          `bson:"status" json:"status"` // ACTIVE or INACTIVE
	Notes       string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// DriverPage is one page of a paginated driver listing.
type DriverPage struct {
	Drivers     []Driver `json:"drivers"`
	Total       int64    `json:"total"`
	Pages       int64    `json:"pages"`
	CurrentPage int64    `json:"currentPage"`
}
