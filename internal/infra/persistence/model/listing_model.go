package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingModel mirrors the 'listings' table in the commerce database.
// SellerID is a plain bigint column: it cites an account in the identity
// database without any enforced constraint.
type ListingModel struct {
	ID             int64               `gorm:"primaryKey;autoIncrement"`
	Name           string              `gorm:"type:varchar(255);not null"`
	Category       string              `gorm:"type:varchar(100);not null"`
	Description    string              `gorm:"type:text"`
	PriceType      string              `gorm:"type:varchar(10);not null;default:fixed"`
	Price          decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PriceMin       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PriceMax       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ContactEmail   string              `gorm:"type:varchar(255)"`
	ContactPhone   string              `gorm:"type:varchar(20)"`
	Whatsapp       string              `gorm:"type:varchar(20)"`
	ContactMethods string              `gorm:"type:varchar(255)"` // CSV subset of email,phone,whatsapp
	SellerID       int64               `gorm:"not null;index"`    // Weak reference into the identity database.
	SellerName     string              `gorm:"type:varchar(120)"`
	CreatedAt      time.Time

	Ratings []RatingModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
