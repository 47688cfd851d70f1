package model

import "time"

// RatingModel mirrors the 'ratings' table in the commerce database. It
// cascades with its listing; AccountID is a weak reference.
type RatingModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ListingID int64 `gorm:"not null;index"`
	AccountID int64 `gorm:"not null"`
	Score     int
	Review    string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
