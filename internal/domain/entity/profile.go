// Package entity contains the core business objects of the project.
package entity

import "time"

// Profile holds marketplace-side preferences for an account. There is one
// profile per account, created lazily the first time it is read. It lives in
// the commerce store, so AccountID is again only a weak reference.
type Profile struct {
	ID        int64
	AccountID int64 // Unique weak reference to Account.ID.
	Name      string
	Email     string
	Phone     string
	Address   string
	DarkMode  bool
	CreatedAt time.Time
}
