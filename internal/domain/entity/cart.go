// Package entity contains the core business objects of the project.
package entity

import "time"

// CartLine is one entry of an account's shopping cart. There is at most one
// line per (account, listing) pair; adding the same listing again increments
// Quantity instead of creating a duplicate line.
type CartLine struct {
	ID        int64
	AccountID int64 // Weak reference to Account.ID in the identity store.
	ListingID int64 // Constrained reference within the commerce store.
	Quantity  int   // Always >= 1.
	AddedAt   time.Time

	// Listing is populated by repositories that load cart lines together
	// with the listings they reference.
	Listing *Listing
}
