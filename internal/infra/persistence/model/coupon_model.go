package model

import "time"

// CouponModel mirrors the 'coupons' table in the commerce database. Codes
// are stored uppercase; lookups normalize before matching.
type CouponModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"type:varchar(50);unique;not null"`
	Discount  int    `gorm:"not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
