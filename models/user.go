package models

import "time"

// User roles mirror the shop's staffing structure.
const (
	RoleAdmin            = "admin"
	RoleManagerFoire     = "manager_foire"
	RoleManagerGrossiste = "manager_grossiste"
	RoleCommercial       = "commercial"
	RoleCaissier         = "caissier"
	RoleVendeuse         = "vendeuse"
)

// RolePermissions maps each role to the permissions it grants.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		"manage:users", "manage:invoices", "manage:inventory", "manage:sales",
		"manage:clients", "manage:drivers", "view:reports", "view:inventory",
		"view:clients", "view:drivers", "view:invoices",
	},
	RoleManagerFoire: {
		"manage:inventory", "manage:sales", "manage:clients", "manage:drivers",
		"view:reports", "view:inventory", "view:clients", "view:drivers",
	},
	RoleManagerGrossiste: {
		"manage:inventory", "manage:sales", "manage:clients", "manage:drivers",
		"view:reports", "view:inventory", "view:clients", "view:drivers",
	},
	RoleCommercial: {
		"manage:sales", "manage:clients", "view:inventory", "view:clients", "view:reports",
	},
	RoleCaissier: {
		"manage:sales", "view:inventory", "view:clients", "view:reports",
	},
	RoleVendeuse: {
		"manage:sales", "view:inventory", "view:clients",
	},
}

// User is a back-office account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Permissions  []string  `bson:"permissions" json:"permissions"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
