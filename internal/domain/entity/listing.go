// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceType selects which price fields of a listing are authoritative.
type PriceType string

const (
	// PriceTypeFixed means Price carries the single selling price.
	PriceTypeFixed PriceType = "fixed"
	// PriceTypeRange means PriceMin/PriceMax describe a negotiable range.
	PriceTypeRange PriceType = "range"
)

// String returns the string representation of the PriceType.
func (p PriceType) String() string {
	return string(p)
}

// IsValid checks if the PriceType is a valid value.
func (p PriceType) IsValid() bool {
	switch p {
	case PriceTypeFixed, PriceTypeRange:
		return true
	default:
		return false
	}
}

// ContactMethod is a channel a buyer may use to reach the seller.
type ContactMethod string

const (
	// ContactMethodEmail routes contact through email.
	ContactMethodEmail ContactMethod = "email"
	// ContactMethodPhone routes contact through a phone call.
	ContactMethodPhone ContactMethod = "phone"
	// ContactMethodWhatsApp routes contact through WhatsApp.
	ContactMethodWhatsApp ContactMethod = "whatsapp"
)

// Listing is a product offered on the marketplace, stored in the commerce
// database. SellerID is a weak reference into the identity store: it is a
// lookup key, never a guaranteed-to-resolve ownership edge. SellerName is a
// denormalized copy of the uploader's display name taken at creation time.
type Listing struct {
	ID             int64
	Name           string
	Category       string
	Description    string
	PriceType      PriceType
	Price          *decimal.Decimal // Authoritative when PriceType is fixed; nil otherwise.
	PriceMin       *decimal.Decimal // Authoritative when PriceType is range.
	PriceMax       *decimal.Decimal
	ContactEmail   string
	ContactPhone   string
	Whatsapp       string
	ContactMethods []ContactMethod
	SellerID       int64  // Weak reference to Account.ID in the identity store.
	SellerName     string // Frozen display name of the uploader.
	CreatedAt      time.Time
}

// EffectivePrice returns the price used for cart totals. Listings without a
// fixed price contribute zero, matching the checkout contract.
func (l *Listing) EffectivePrice() decimal.Decimal {
	if l.Price == nil {
		return decimal.Zero
	}

	return *l.Price
}
