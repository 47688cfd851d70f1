// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core identity entity, stored in the identity database.
// Commerce entities refer to it only by its numeric ID; the commerce store
// holds no constraint against this table, so every such reference must be
// resolved explicitly before it is trusted.
type Account struct {
	ID              int64         // Surrogate primary key; the value embedded in commerce records.
	Username        string        // Unique login name.
	Email           string        // Unique contact email.
	PasswordHash    string        // bcrypt hash of the account password.
	FullName        string        // Optional display name.
	Phone           string        // Optional contact phone.
	Role            Role          // Exactly one of buyer, seller, admin.
	ShopName        string        // Seller storefront name; empty for non-sellers.
	ShopDescription string        // Seller storefront description.
	Status          AccountStatus // active, inactive or banned.
	CanUploadStock  bool          // Buyers promoted to seller gain this flag.
	CreatedAt       time.Time     // Timestamp of account creation.
}

// IsActive reports whether the account may act in the system.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// DisplayName returns the name shown on listings this account uploads:
// shop name first, then full name, then username.
func (a *Account) DisplayName() string {
	if a.ShopName != "" {
		return a.ShopName
	}
	if a.FullName != "" {
		return a.FullName
	}

	return a.Username
}
