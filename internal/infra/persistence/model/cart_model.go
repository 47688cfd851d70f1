package model

import "time"

// CartLineModel mirrors the 'cart_items' table in the commerce database.
// AccountID is a weak reference; ListingID is a real foreign key inside the
// commerce store. The (account_id, listing_id) pair is unique so repeated
// adds merge into one line.
type CartLineModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AccountID int64 `gorm:"not null;uniqueIndex:idx_cart_account_listing"`
	ListingID int64 `gorm:"not null;uniqueIndex:idx_cart_account_listing"`
	Quantity  int   `gorm:"not null;default:1"`
	AddedAt   time.Time

	Listing *ListingModel `gorm:"foreignKey:ListingID"`
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_items"
}
