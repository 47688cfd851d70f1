package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table in the commerce database.
type OrderModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	AccountID  int64           `gorm:"not null;index"` // Weak reference into the identity database.
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"type:varchar(50);not null;default:pending"`
	CouponCode string          `gorm:"type:varchar(100)"`
	CreatedAt  time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_items' table. Name, Quantity and Price
// are frozen copies taken at checkout time; ListingID is kept only as a
// best-effort link back to the catalog.
type OrderLineModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ListingID int64           `gorm:"not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null;default:1"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_items"
}
